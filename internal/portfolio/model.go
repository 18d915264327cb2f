// Package portfolio holds the portfolio content document and its file-backed store.
package portfolio

import "encoding/json"

// PortfolioData is the whole content document. It is read and written as a
// single unit; there are no partial documents once the store is initialized.
type PortfolioData struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Experiences  []Experience `json:"experiences"`
	Projects     []Project    `json:"projects"`
	Skills       Skills       `json:"skills"`
	Education    []Education  `json:"education"`
	Interests    string       `json:"interests"`
}

type PersonalInfo struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Email       string `json:"email"`
	Phone       Phone  `json:"phone"`
	GitHub      string `json:"github"`
	LinkedIn    string `json:"linkedin"`
}

// Phone holds one or more phone numbers. The document stores a single number
// as a bare JSON string and multiple numbers as an array; both forms are
// accepted on input and normalized to a slice here.
type Phone struct {
	Numbers []string
}

func (p Phone) MarshalJSON() ([]byte, error) {
	switch len(p.Numbers) {
	case 0:
		return json.Marshal("")
	case 1:
		return json.Marshal(p.Numbers[0])
	default:
		return json.Marshal(p.Numbers)
	}
}

func (p *Phone) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			p.Numbers = nil
		} else {
			p.Numbers = []string{single}
		}
		return nil
	}
	var multiple []string
	if err := json.Unmarshal(data, &multiple); err != nil {
		return err
	}
	p.Numbers = multiple
	return nil
}

type Experience struct {
	ID          string   `json:"id"`
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	Location    string   `json:"location"`
	Period      string   `json:"period"`
	Description []string `json:"description"`
	Color       string   `json:"color"`
}

type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Type         string   `json:"type"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link"`
	Color        string   `json:"color"`
}

// Skills is a fixed set of four categories rather than an open list.
type Skills struct {
	Languages    SkillCategory `json:"languages"`
	Technologies SkillCategory `json:"technologies"`
	WebDevTools  SkillCategory `json:"webDevTools"`
	Frameworks   SkillCategory `json:"frameworks"`
}

type SkillCategory struct {
	Title  string   `json:"title"`
	Skills []string `json:"skills"`
	Color  string   `json:"color"`
}

type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Period      string `json:"period"`
	Achievement string `json:"achievement"`
	Color       string `json:"color"`
}
