package models

// Vacancy is a single listing as returned by the hh.ru vacancies API.
type Vacancy struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Employer     Employer `json:"employer"`
	Salary       *Salary  `json:"salary"`
	AlternateURL string   `json:"alternate_url"`
	PublishedAt  string   `json:"published_at"`
}

type Employer struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Salary bounds are optional independently of each other.
type Salary struct {
	From     *int   `json:"from"`
	To       *int   `json:"to"`
	Currency string `json:"currency"`
}

// Page is one response of the paginated search endpoint.
type Page struct {
	Items []Vacancy `json:"items"`
	Found int       `json:"found"`
	Pages *int      `json:"pages"`
	Page  int       `json:"page"`
}
