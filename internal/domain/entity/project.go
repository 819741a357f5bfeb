package entity

// Project is the project a post belongs to. Equality is by value.
type Project struct {
	title   string
	repoURL URL
}

// NewProject builds a Project. An empty repoURL means the project has no
// repository; any other value must be a valid URL, otherwise the error wraps
// ErrInvalidURL.
func NewProject(title, repoURL string) (Project, error) {
	p := Project{title: title}
	if repoURL == "" {
		return p, nil
	}
	u, err := NewURL(repoURL)
	if err != nil {
		return Project{}, err
	}
	p.repoURL = u
	return p, nil
}

func (p Project) Title() string { return p.title }

func (p Project) RepoURL() URL { return p.repoURL }

// HasRepo reports whether a repository URL was declared.
func (p Project) HasRepo() bool { return !p.repoURL.IsZero() }
