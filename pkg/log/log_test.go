package log

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestLogger() *logger {
	return &logger{entry: logrus.NewEntry(logrus.New())}
}

func TestWithField_DevelopmentFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	t.Run("Identificadores do domínio - sobrevivem ao filtro", func(t *testing.T) {
		l := newTestLogger().
			WithField("business_id", "BIZ001").
			WithField("batch_id", "BAT001")

		data := l.(*logger).entry.Data
		assert.Equal(t, "BIZ001", data["business_id"])
		assert.Equal(t, "BAT001", data["batch_id"])
	})

	t.Run("Campo fora da lista - é descartado em desenvolvimento", func(t *testing.T) {
		l := newTestLogger().WithField("payload", "gigante")

		assert.Empty(t, l.(*logger).entry.Data)
	})
}

func TestWithFields_DevelopmentFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	l := newTestLogger().WithFields(Fields{
		"post_id":  "PST001",
		"user_ip":  "10.0.0.1",
		"internal": "ruído",
	})

	data := l.(*logger).entry.Data
	assert.Equal(t, "PST001", data["post_id"])
	assert.Equal(t, "10.0.0.1", data["user_ip"])
	assert.NotContains(t, data, "internal")
}

func TestWithFields_Production(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	l := newTestLogger().WithFields(Fields{"internal": "mantido"})

	assert.Equal(t, "mantido", l.(*logger).entry.Data["internal"])
}
