package i18n

import "sync"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "case" or "want").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "duplicate_case":
			return "ケース名が重複しています"
		case "duplicate_field":
			return "フィールド名が重複しています"
		case "invalid_name":
			return "識別子が不正です"
		case "arity":
			return "引数の数が一致しません"
		case "missing_handler":
			return "ハンドラが不足しています"
		case "index_out_of_range":
			return "インデックスが範囲外です"
		case "unknown_case":
			return "未知のケースです"
		case "not_enumeration":
			return "列挙型ではありません"
		case "unknown_method":
			return "未知のメソッドです"
		case "method_conflict":
			return "メソッド名が衝突しています"
		case "unknown_field":
			return "未知のフィールドです"
		case "missing_field":
			return "フィールドが不足しています"
		case "type_mismatch":
			return "型が一致しません"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "duplicate_case":
			return "duplicate case name"
		case "duplicate_field":
			return "duplicate field name"
		case "invalid_name":
			return "invalid identifier"
		case "arity":
			return "wrong number of arguments"
		case "missing_handler":
			return "missing handler"
		case "index_out_of_range":
			return "index out of range"
		case "unknown_case":
			return "unknown case"
		case "not_enumeration":
			return "type is not an enumeration"
		case "unknown_method":
			return "unknown method"
		case "method_conflict":
			return "method name conflict"
		case "unknown_field":
			return "unknown field"
		case "missing_field":
			return "missing field"
		case "type_mismatch":
			return "type mismatch"
		case "parse_error":
			return "parse error"
		}
	}
	return code
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
