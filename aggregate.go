package loctok

import "sort"

// LangSummary sums lines and tokens for one language.
type LangSummary struct {
	Language string `json:"language"`
	Lines    int    `json:"lines"`
	Tokens   int    `json:"tokens"`
}

// AggregateByLanguage groups files by classified language and sums their
// counts. The result is sorted by token count descending; ties break on
// language name so repeated runs render identically.
func AggregateByLanguage(files []FileCount) []LangSummary {
	byLang := make(map[string]*LangSummary)
	for _, f := range files {
		lang := LanguageFromPath(f.Path)
		s := byLang[lang]
		if s == nil {
			s = &LangSummary{Language: lang}
			byLang[lang] = s
		}
		s.Lines += f.Lines
		s.Tokens += f.Tokens
	}

	out := make([]LangSummary, 0, len(byLang))
	for _, s := range byLang {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Tokens != out[j].Tokens {
			return out[i].Tokens > out[j].Tokens
		}
		return out[i].Language < out[j].Language
	})
	return out
}
