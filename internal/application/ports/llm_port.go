package ports

import "context"

// LLMService porta de saída para o serviço de análise por IA. Qualquer
// adaptador (Gemini, OpenAI, mock) implementa este contrato; a aplicação só
// conhece a interface, nunca a implementação concreta.
type LLMService interface {
	// GenerateInsights recebe o prompt montado pela aplicação e devolve a
	// análise em texto, junto com o nome do modelo que respondeu. O contexto
	// deve carregar timeout para não travar em chamadas externas.
	GenerateInsights(ctx context.Context, prompt string) (text, model string, err error)
}
