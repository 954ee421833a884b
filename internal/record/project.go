package record

import (
	"context"
	"errors"

	"github.com/dgallion1/notiondoc/internal/doctree"
	"github.com/dgallion1/notiondoc/internal/notion"
)

var ErrProjectNotFound = errors.New("project not found")

const ProjectNameProp = "Project name"

// LookupProject returns the page id of the project called name.
func (s *Store) LookupProject(ctx context.Context, name string) (string, error) {
	db, err := s.database("project", s.dbs.Projects)
	if err != nil {
		return "", err
	}
	pages, err := s.src.QueryDatabase(ctx, db, notion.Query{Filter: TextEquals(ProjectNameProp, name)}, s.opts)
	if err != nil {
		return "", err
	}
	if len(pages) == 0 {
		return "", ErrProjectNotFound
	}
	return pages[0].ID, nil
}

// PortalProject is a project listed on the portal.
type PortalProject struct {
	PageID      string             `json:"pageId"`
	Name        []doctree.RichText `json:"name"`
	Website     *string            `json:"website"`
	Network     []string           `json:"network"`
	Twitter     *string            `json:"twitter"`
	GitHub      *string            `json:"github"`
	Description []doctree.RichText `json:"description"`
}

// ParsePortalProjectPage reads the basic properties of a portal project.
func ParsePortalProjectPage(page doctree.Page) (PortalProject, error) {
	props := page.Page.Properties
	var (
		p   = PortalProject{PageID: page.Page.ID}
		err error
	)
	if p.Name, err = titleProperty(props, "Title"); err != nil {
		return PortalProject{}, err
	}
	if p.Website, err = urlProperty(props, "Website Link"); err != nil {
		return PortalProject{}, err
	}
	if p.Network, err = multiSelectProperty(props, "Chains"); err != nil {
		return PortalProject{}, err
	}
	if p.Twitter, err = urlProperty(props, "Twitter Link"); err != nil {
		return PortalProject{}, err
	}
	if p.GitHub, err = urlProperty(props, "GitHub Link"); err != nil {
		return PortalProject{}, err
	}
	if p.Description, err = richTextProperty(props, "description"); err != nil {
		return PortalProject{}, err
	}
	return p, nil
}

// LookupPortalProjects returns the portal projects matching q.
func (s *Store) LookupPortalProjects(ctx context.Context, q notion.Query) ([]PortalProject, error) {
	db, err := s.database("portal", s.dbs.Portal)
	if err != nil {
		return nil, err
	}
	pages, err := s.src.QueryDatabaseWithBlocks(ctx, db, q, s.opts)
	if err != nil {
		return nil, err
	}
	projects := make([]PortalProject, 0, len(pages))
	for _, page := range pages {
		p, err := ParsePortalProjectPage(page)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}
