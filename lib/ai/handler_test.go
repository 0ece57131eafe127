package ai

import (
	"testing"

	"fntp-backend/config"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	provider, err := New(config.AI{Provider: ProviderOpenAI, OpenAIKey: "sk-test"})
	require.Nil(t, err)
	require.Equal(t, ProviderOpenAI, provider.Name())
	require.NotEmpty(t, provider.Model())

	provider, err = New(config.AI{Provider: ProviderYandexGPT, YandexIAMToken: "t", YandexCatalogID: "c"})
	require.Nil(t, err)
	require.Equal(t, ProviderYandexGPT, provider.Name())

	_, err = New(config.AI{Provider: ProviderOpenAI})
	require.NotNil(t, err)
	_, err = New(config.AI{Provider: "ollama"})
	require.NotNil(t, err)
}
