package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ai-marketer-api/infrastructure/integrator/meta/domain"
)

// PublishPagePhoto publica uma foto com legenda em uma página do
// Facebook. Sem imagem a publicação vai para o feed como texto.
func (c *MetaClient) PublishPagePhoto(pageID, pageToken, imageURL, caption string) (*metadomain.PublishResponse, error) {
	var endpoint string

	params := url.Values{}
	params.Add("access_token", pageToken)

	if imageURL != "" {
		endpoint = fmt.Sprintf("%s/%s/photos", c.Cfg.Meta.URL, pageID)
		params.Add("url", imageURL)
		params.Add("caption", caption)
	} else {
		endpoint = fmt.Sprintf("%s/%s/feed", c.Cfg.Meta.URL, pageID)
		params.Add("message", caption)
	}

	return c.postForm(endpoint, params)
}

// PublishInstagramMedia cria o contêiner de mídia e o publica em
// seguida; o Instagram exige os dois passos.
func (c *MetaClient) PublishInstagramMedia(igUserID, accessToken, imageURL, caption string) (*metadomain.PublishResponse, error) {
	containerParams := url.Values{}
	containerParams.Add("image_url", imageURL)
	containerParams.Add("caption", caption)
	containerParams.Add("access_token", accessToken)

	container, err := c.postForm(fmt.Sprintf("%s/%s/media", c.Cfg.Meta.URL, igUserID), containerParams)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar o contêiner de mídia: %w", err)
	}

	publishParams := url.Values{}
	publishParams.Add("creation_id", container.ID)
	publishParams.Add("access_token", accessToken)

	published, err := c.postForm(fmt.Sprintf("%s/%s/media_publish", c.Cfg.Meta.URL, igUserID), publishParams)
	if err != nil {
		return nil, fmt.Errorf("erro ao publicar a mídia: %w", err)
	}

	return published, nil
}

func (c *MetaClient) postForm(endpoint string, params url.Values) (*metadomain.PublishResponse, error) {
	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

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

	var response metadomain.PublishResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &response, nil
}
