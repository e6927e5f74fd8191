package ai

import (
	"fmt"
	"strings"
)

// DefaultContext labels the situation when the caller gives none.
const DefaultContext = "일반적인 공적 상황"

const systemPrompt = `당신은 한국어 공적 글쓰기 전문가입니다. 사용자가 입력한 문장을 정중하고 전문적이며 격식 있는 표현으로 다듬어 주세요.

목표:
1. 이메일, 공문, 비즈니스 등 공적인 상황에 어울리는 표현
2. 상황에 맞는 존댓말과 경어
3. 간결하면서도 예의 바른 문장
4. 진심과 전문성이 느껴지는 어조

응답 형식:
- 다듬은 문장을 3가지 버전으로 제시합니다
- 버전마다 뉘앙스는 조금씩 달라도 모두 격식 있는 표현이어야 합니다`

// BuildPrompt embeds the situation label and the verbatim text into the fixed
// instruction pair asking for three numbered variants.
func BuildPrompt(text, context string) Prompt {
	if strings.TrimSpace(context) == "" {
		context = DefaultContext
	}

	user := fmt.Sprintf(`상황: %s
원본 문장: "%s"

위 문장을 공적인 상황에 맞게 3가지 버전으로 다듬어 주세요. 각 버전은 한 줄로 작성하고 앞에 번호를 붙여 주세요.`, context, text)

	return Prompt{System: systemPrompt, User: user}
}
