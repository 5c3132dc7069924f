package utils

import "fmt"

// Message keys for the user-facing strings of the questionnaire.
const (
	MsgGreeting       = "submit.greeting"
	MsgSubmitFailed   = "submit.failed"
	MsgNetworkError   = "submit.network_error"
	MsgSubmitHint     = "submit.hint"
	MsgSubmitting     = "submit.pending"
	MsgSubmitButton   = "submit.button"
	MsgTierMild       = "tier.mild"
	MsgTierModerate   = "tier.moderate"
	MsgTierSevere     = "tier.severe"
	MsgAdviceMild     = "advice.mild"
	MsgAdviceModerate = "advice.moderate"
	MsgAdviceSevere   = "advice.severe"
	MsgDisclaimer     = "advice.disclaimer"
	MsgConsent        = "form.consent"
	MsgEmailPrivacy   = "form.email_privacy"
	MsgQoLLabel       = "form.qol"
	MsgQoLAdvisory    = "form.qol_advisory"
)

var translations = map[string]map[string]string{
	"en": {
		MsgGreeting:       "Thanks, %s! Your IPSS total is %d.",
		MsgSubmitFailed:   "Submission failed.",
		MsgNetworkError:   "Network error. Please try again.",
		MsgSubmitHint:     "Enter your name & a valid email, consent, and answer all items.",
		MsgSubmitting:     "Submitting…",
		MsgSubmitButton:   "Submit assessment",
		MsgTierMild:       "Mild",
		MsgTierModerate:   "Moderate",
		MsgTierSevere:     "Severe",
		MsgAdviceMild:     "Mild (0–7): lifestyle changes and monitoring may help.",
		MsgAdviceModerate: "Moderate (8–19): consider discussing options with a healthcare professional.",
		MsgAdviceSevere:   "Severe (20–35): seek medical advice to evaluate therapies.",
		MsgDisclaimer:     "This tool is informational and not a substitute for medical care.",
		MsgConsent:        "I consent to share these responses for research and product improvement. I understand this is not medical advice.",
		MsgEmailPrivacy:   "We never share your email.",
		MsgQoLLabel:       "Quality of Life (0–6, optional)",
		MsgQoLAdvisory:    "Quality of life is usually between 0 and 6.",
	},
	"zh": {
		MsgGreeting:       "谢谢，%s！您的 IPSS 总分为 %d。",
		MsgSubmitFailed:   "提交失败。",
		MsgNetworkError:   "网络错误，请重试。",
		MsgSubmitHint:     "请输入姓名和有效邮箱，勾选同意，并回答所有题目。",
		MsgSubmitting:     "提交中…",
		MsgSubmitButton:   "提交评估",
		MsgTierMild:       "轻度",
		MsgTierModerate:   "中度",
		MsgTierSevere:     "重度",
		MsgAdviceMild:     "轻度（0–7）：生活方式调整和观察可能有帮助。",
		MsgAdviceModerate: "中度（8–19）：建议与医疗专业人员讨论治疗方案。",
		MsgAdviceSevere:   "重度（20–35）：请寻求医疗建议以评估治疗。",
		MsgDisclaimer:     "本工具仅供参考，不能替代医疗诊治。",
		MsgConsent:        "我同意将这些回答用于研究和产品改进，并理解这不是医疗建议。",
		MsgEmailPrivacy:   "我们绝不会分享您的邮箱。",
		MsgQoLLabel:       "生活质量（0–6，可选）",
		MsgQoLAdvisory:    "生活质量评分通常在 0 到 6 之间。",
	},
}

// T returns the translated string for key in locale; falls back to English.
func T(locale, key string) string {
	if m, ok := translations[locale]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := translations["en"][key]; ok {
		return v
	}
	return key
}

// Tf formats the translated string for key with args.
func Tf(locale, key string, args ...any) string {
	return fmt.Sprintf(T(locale, key), args...)
}
