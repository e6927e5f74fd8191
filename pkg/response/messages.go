package response

// User-facing messages. The mobile client shows these verbatim.
const (
	MsgNotFoundRoute  = "요청한 리소스를 찾을 수 없습니다."
	MsgInternalServer = "서버 오류가 발생했습니다."

	MsgAuthRequired    = "인증이 필요합니다."
	MsgInvalidToken    = "유효하지 않은 토큰입니다."
	MsgUserNotFound    = "사용자를 찾을 수 없습니다."
	MsgAccessTokenReq  = "액세스 토큰이 필요합니다."
	MsgIDTokenRequired = "ID 토큰이 필요합니다."
	MsgKakaoLoginFail  = "카카오 로그인에 실패했습니다."
	MsgGoogleLoginFail = "구글 로그인에 실패했습니다."
	MsgUserLookupFail  = "사용자 정보 조회에 실패했습니다."

	MsgTextRequired   = "텍스트는 필수입니다."
	MsgInvalidRequest = "요청 형식이 올바르지 않습니다."
	MsgRefineFailed   = "텍스트 다듬기에 실패했습니다."
	MsgHistoryFailed  = "히스토리 조회에 실패했습니다."
	MsgItemNotFound   = "항목을 찾을 수 없습니다."
	MsgItemLookupFail = "항목 조회에 실패했습니다."
	MsgDeleted        = "삭제되었습니다."
	MsgDeleteFailed   = "삭제에 실패했습니다."
)

const (
	MsgSettingsUpdated  = "Ollama 설정이 변경되었습니다."
	MsgInvalidSettings  = "올바른 Ollama 서버 주소가 필요합니다."
	MsgOllamaTestFailed = "Ollama 서버에 연결할 수 없습니다."
	MsgDatabaseDown     = "데이터베이스에 연결할 수 없습니다."
	MsgAdminRequired    = "관리자 권한이 필요합니다."
)
