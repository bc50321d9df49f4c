package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ai-marketer-api/infrastructure/integrator/meta/domain"
)

type responsePages struct {
	Data []metadomain.Page `json:"data"`
}

func (c *MetaClient) GetPages(userToken string) ([]metadomain.Page, error) {
	baseURL := fmt.Sprintf("%s/me/accounts", c.Cfg.Meta.URL)

	params := url.Values{}
	params.Add("fields", "id,name,access_token,instagram_business_account")
	params.Add("access_token", userToken)

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

	var response responsePages
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	if response.Data == nil {
		return nil, fmt.Errorf("nenhuma página encontrada para o token")
	}

	return response.Data, nil
}
