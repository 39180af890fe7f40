package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "min" or "allowed").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "too_short":
			return "短すぎます"
		case "too_long":
			return "長すぎます"
		case "pattern":
			return "パターンに一致しません"
		case "invalid_enum":
			return "許可された値ではありません"
		case "out_of_range":
			return "範囲外です"
		case "required":
			return "必須フィールドが不足しています"
		case "invalid_format":
			return "書式が不正です"
		case "invalid_type":
			return "型が不正です"
		case "parse_error":
			return "解析エラー"
		case "choice_none":
			return "選択肢が存在しません"
		case "choice_ambiguous":
			return "選択肢が複数存在します"
		}
	default: // "en"
		switch code {
		case "too_short":
			return "too short"
		case "too_long":
			return "too long"
		case "pattern":
			return "pattern mismatch"
		case "invalid_enum":
			return "value not in enumeration"
		case "out_of_range":
			return "out of range"
		case "required":
			return "required field missing"
		case "invalid_format":
			return "invalid format"
		case "invalid_type":
			return "invalid type"
		case "parse_error":
			return "parse error"
		case "choice_none":
			return "no choice branch present"
		case "choice_ambiguous":
			return "more than one choice branch present"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
