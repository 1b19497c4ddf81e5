package category

import "strings"

// Service provides business logic for categories.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) List() []Category {
	items, err := s.repo.List()
	if err != nil {
		return []Category{}
	}
	return items
}

func (s *Service) Create(c Category) (Category, error) {
	c.Name = strings.TrimSpace(c.Name)
	return s.repo.Create(c)
}

func (s *Service) Update(id int, c Category) (Category, error) {
	c.Name = strings.TrimSpace(c.Name)
	return s.repo.Update(id, c)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
