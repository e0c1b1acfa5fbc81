// Package app holds user-facing message constants shared by the service and
// TUI layers. All strings are in Brazilian Portuguese, matching the language
// of the Traduzo backend.
package app

const (
	// MsgLoginFailed is shown when authentication fails and the server gave no reason.
	MsgLoginFailed = "Erro no login"

	// MsgRegisterFailed is shown when account creation fails and the server gave no reason.
	MsgRegisterFailed = "Erro no registro"

	// MsgProfileLoadFailed is shown when the stored session cannot be restored.
	MsgProfileLoadFailed = "Erro ao carregar usuário"

	// MsgProfileSaveFailed is shown when saving profile settings fails.
	MsgProfileSaveFailed = "Erro ao atualizar perfil"

	// MsgAvatarUpdateFailed is shown when uploading a new avatar fails.
	MsgAvatarUpdateFailed = "Erro ao atualizar avatar"

	// MsgTranslateFailed is shown when a translation request fails.
	MsgTranslateFailed = "Erro na tradução"

	// MsgDetectFailed is shown when language detection fails.
	MsgDetectFailed = "Erro na detecção de idioma"

	// MsgImageProcessFailed is shown when text extraction from an image fails.
	MsgImageProcessFailed = "Erro ao processar imagem"

	// MsgHistoryFetchFailed is shown when the translation history cannot be loaded.
	MsgHistoryFetchFailed = "Erro ao buscar histórico de traduções"

	// MsgHistoryClearFailed is shown when clearing the translation history fails.
	MsgHistoryClearFailed = "Erro ao limpar histórico de traduções"

	// MsgTranslationRemoveFailed is shown when deleting a single history entry fails.
	MsgTranslationRemoveFailed = "Erro ao remover tradução"

	// MsgOperationInFlight is shown when an operation is rejected because
	// another one is still running.
	MsgOperationInFlight = "Operação em andamento"

	// MsgServerUnavailable is shown when the backend cannot be reached at all.
	MsgServerUnavailable = "Servidor indisponível"
)
