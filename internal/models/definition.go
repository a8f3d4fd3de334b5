package models

// Definition is a dictionary entry as returned by the definitions API
type Definition struct {
	Word       string     `json:"word"`
	Phonetic   string     `json:"phonetic,omitempty"`
	Phonetics  []Phonetic `json:"phonetics"`
	Meanings   []Meaning  `json:"meanings"`
	SourceURLs []string   `json:"sourceUrls,omitempty"`
}

// Phonetic is a pronunciation of a word. Either field may be empty.
type Phonetic struct {
	Text  string `json:"text,omitempty"`
	Audio string `json:"audio,omitempty"`
}

// Meaning groups the senses of a word under one part of speech
type Meaning struct {
	PartOfSpeech string   `json:"partOfSpeech"`
	Definitions  []Sense  `json:"definitions"`
	Synonyms     []string `json:"synonyms,omitempty"`
	Antonyms     []string `json:"antonyms,omitempty"`
}

// Sense is a single definition line of a meaning
type Sense struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example,omitempty"`
	Synonyms   []string `json:"synonyms,omitempty"`
	Antonyms   []string `json:"antonyms,omitempty"`
}

// HasPhonetics reports whether any phonetic carries text or audio
func (d *Definition) HasPhonetics() bool {
	for _, p := range d.Phonetics {
		if p.Text != "" || p.Audio != "" {
			return true
		}
	}
	return false
}

// SenseCount returns the number of definition lines across all meanings
func (d *Definition) SenseCount() int {
	count := 0
	for _, m := range d.Meanings {
		count += len(m.Definitions)
	}
	return count
}
