package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ai-marketer-api/infrastructure/integrator/meta/domain"
)

type responseEngagement struct {
	ID        string `json:"id"`
	Permalink string `json:"permalink_url"`
	Reactions struct {
		Summary struct {
			TotalCount int `json:"total_count"`
		} `json:"summary"`
	} `json:"reactions"`
	Comments struct {
		Summary struct {
			TotalCount int `json:"total_count"`
		} `json:"summary"`
	} `json:"comments"`
	Shares struct {
		Count int `json:"count"`
	} `json:"shares"`
}

func (c *MetaClient) GetPostEngagement(externalPostID, accessToken string) (*metadomain.PostEngagement, error) {
	baseURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, externalPostID)

	params := url.Values{}
	params.Add("fields", "id,permalink_url,reactions.summary(total_count),comments.summary(total_count),shares")
	params.Add("access_token", accessToken)

	requestURL := baseURL + "?" + params.Encode()

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.handleResponse(resp)
	if err != nil {
		return nil, err
	}

	var response responseEngagement
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &metadomain.PostEngagement{
		Reactions: response.Reactions.Summary.TotalCount,
		Comments:  response.Comments.Summary.TotalCount,
		Shares:    response.Shares.Count,
		Permalink: response.Permalink,
	}, nil
}
