package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ai-marketer-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/ai-marketer-api/internal/config"
)

// fakeClient devolve uma resposta fixa e guarda o prompt enviado.
type fakeClient struct {
	response   string
	err        error
	lastParams openaiclient.ChatCompletionParams
}

func (f *fakeClient) CreateChatCompletion(params openaiclient.ChatCompletionParams) (string, error) {
	f.lastParams = params
	return f.response, f.err
}

func TestOpenAIService_GenerateSuggestions(t *testing.T) {
	tests := []struct {
		name     string
		response string
		wantErr  bool
		wantLen  int
	}{
		{
			name:     "Resposta JSON limpa - deve interpretar os payloads",
			response: `[{"title":"Combo da tarde","description":"Flat White + bolo","product_name":["Flat White"],"category":["bundle"]}]`,
			wantLen:  1,
		},
		{
			name: "Resposta com cerca de markdown - a cerca é removida antes do parse",
			response: "```json\n" +
				`[{"title":"Semana do café","description":"Desconto","product_name":["Flat White"],"category":["discount"]}]` +
				"\n```",
			wantLen: 1,
		},
		{
			name:     "Resposta em prosa - o parse falha e nada é devolvido",
			response: "Aqui estão algumas ideias de promoção para o seu negócio...",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{response: tt.response}
			service := New(&config.Config{}, client)

			payloads, err := service.GenerateSuggestions(SuggestionContext{
				BusinessName: "Cafeteria do Porto",
				CategoryKeys: []string{"discount", "bundle"},
			})

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, payloads, tt.wantLen)
			assert.NotEmpty(t, payloads[0].Title)
			assert.Contains(t, client.lastParams.UserPrompt, "Cafeteria do Porto")
			assert.Contains(t, client.lastParams.UserPrompt, "discount, bundle")
		})
	}
}

func TestBuildSuggestionPrompt(t *testing.T) {
	t.Run("Feedback anterior - cada entrada leva os produtos da sugestão", func(t *testing.T) {
		prompt := buildSuggestionPrompt(SuggestionContext{
			BusinessName: "Cafeteria do Porto",
			Feedback: []FeedbackEntry{
				{ProductNames: []string{"Flat White", "Chá Gelado"}, Feedback: "Muito focado em desconto"},
			},
			CategoryKeys: []string{"discount"},
		})

		assert.Contains(t, prompt, `Products: Flat White, Chá Gelado - Feedback: "Muito focado em desconto"`)
	})

	t.Run("Instrução final - ideias por produto dos extremos, só as 5 melhores voltam", func(t *testing.T) {
		prompt := buildSuggestionPrompt(SuggestionContext{BusinessName: "Cafeteria do Porto"})

		assert.Contains(t, prompt, "for each product in the top 10% and bottom 10%")
		assert.Contains(t, prompt, "only the 5 most promising")
	})
}

func TestOpenAIService_GenerateCaptions(t *testing.T) {
	t.Run("Cinco legendas com cerca - devolve a lista limpa", func(t *testing.T) {
		client := &fakeClient{
			response: "```json\n[\"Legenda 1\",\"Legenda 2\",\"Legenda 3\",\"Legenda 4\",\"Legenda 5\"]\n```",
		}
		service := New(&config.Config{}, client)

		captions, err := service.GenerateCaptions(CaptionContext{
			BusinessName: "Cafeteria do Porto",
			ItemInfo:     "Flat White em dobro",
			ExtraPrompt:  "tom divertido",
		})

		assert.NoError(t, err)
		assert.Len(t, captions, 5)
		assert.Contains(t, client.lastParams.UserPrompt, "Flat White em dobro")
		assert.Contains(t, client.lastParams.UserPrompt, "tom divertido")
	})
}

func TestStripJSONFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`[]`, `[]`},
		{"```json\n[]\n```", `[]`},
		{"```\n[]\n```", `[]`},
		{"  [1,2]  ", `[1,2]`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, stripJSONFences(tt.in))
	}
}
