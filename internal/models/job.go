package models

// Job is a normalized listing scraped from a profesia.sk result page.
type Job struct {
	Title     string `json:"title"`
	Company   string `json:"company"`
	Location  string `json:"location"`
	URL       string `json:"url"`
	SalaryRaw string `json:"salary_raw,omitempty"`
	HasSalary bool   `json:"has_salary"`
	SalaryMin int    `json:"salary_min,omitempty"`
	SalaryMax int    `json:"salary_max,omitempty"`
}
