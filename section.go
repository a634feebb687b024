package docscrape

// Section represents one documentation page to scrape. Sections are declared
// once in configuration and never mutated during a run.
type Section struct {
	Name        string `yaml:"name" json:"name"`
	URLSuffix   string `yaml:"url_suffix" json:"urlSuffix"`
	Filename    string `yaml:"filename" json:"filename"`
	Description string `yaml:"description" json:"description"`
}

// PageURL returns the absolute URL of the section's page.
func (s *Section) PageURL(baseURL string) string {
	return baseURL + s.URLSuffix
}

// Validate returns an error if the section contains invalid fields.
func (s *Section) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "section name required")
	}
	if s.URLSuffix == "" {
		return Errorf(EINVALID, "section %q: url_suffix required", s.Name)
	}
	if s.Filename == "" {
		return Errorf(EINVALID, "section %q: filename required", s.Name)
	}
	if s.Description == "" {
		return Errorf(EINVALID, "section %q: description required", s.Name)
	}
	return nil
}
