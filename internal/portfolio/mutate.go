package portfolio

import (
	"errors"
	"strconv"
	"time"
)

// ErrNotFound is returned when an update targets an ID that is not in the
// collection. The document on disk is left untouched.
var ErrNotFound = errors.New("entry not found")

// newID generates collection IDs as millisecond-timestamp strings, matching
// the IDs already present in seeded documents.
func newID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// InsertExperience appends an experience, assigning an ID when none is given,
// and returns the entry as stored.
func (s *Store) InsertExperience(exp Experience) (Experience, error) {
	if exp.ID == "" {
		exp.ID = newID()
	}
	_, err := s.Apply(func(doc *PortfolioData) error {
		doc.Experiences = append(doc.Experiences, exp)
		return nil
	})
	return exp, err
}

// UpdateExperience replaces the entry with a matching ID in place, preserving
// its position in the list.
func (s *Store) UpdateExperience(exp Experience) (Experience, error) {
	_, err := s.Apply(func(doc *PortfolioData) error {
		for i := range doc.Experiences {
			if doc.Experiences[i].ID == exp.ID {
				doc.Experiences[i] = exp
				return nil
			}
		}
		return ErrNotFound
	})
	return exp, err
}

// DeleteExperience removes every entry with the given ID. Deleting an ID that
// is not present is not an error.
func (s *Store) DeleteExperience(id string) error {
	_, err := s.Apply(func(doc *PortfolioData) error {
		kept := doc.Experiences[:0]
		for _, exp := range doc.Experiences {
			if exp.ID != id {
				kept = append(kept, exp)
			}
		}
		doc.Experiences = kept
		return nil
	})
	return err
}

func (s *Store) InsertProject(proj Project) (Project, error) {
	if proj.ID == "" {
		proj.ID = newID()
	}
	_, err := s.Apply(func(doc *PortfolioData) error {
		doc.Projects = append(doc.Projects, proj)
		return nil
	})
	return proj, err
}

func (s *Store) UpdateProject(proj Project) (Project, error) {
	_, err := s.Apply(func(doc *PortfolioData) error {
		for i := range doc.Projects {
			if doc.Projects[i].ID == proj.ID {
				doc.Projects[i] = proj
				return nil
			}
		}
		return ErrNotFound
	})
	return proj, err
}

func (s *Store) DeleteProject(id string) error {
	_, err := s.Apply(func(doc *PortfolioData) error {
		kept := doc.Projects[:0]
		for _, proj := range doc.Projects {
			if proj.ID != id {
				kept = append(kept, proj)
			}
		}
		doc.Projects = kept
		return nil
	})
	return err
}
