package product

// ServiceInterface allows other packages (checkout, tests) to depend on the
// product service abstractly.
type ServiceInterface interface {
	List(categoryID *int) []Product
	GetByID(id int) (Product, error)
	Create(p Product) (Product, error)
	Update(id int, p Product) (Product, error)
	Delete(id int) error
}

type Service struct {
	repo Repository
}

var _ ServiceInterface = (*Service)(nil)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(categoryID *int) []Product {
	return s.repo.List(categoryID)
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(p Product) (Product, error) {
	normalizePricing(&p)
	return s.repo.Create(p)
}

func (s *Service) Update(id int, p Product) (Product, error) {
	normalizePricing(&p)
	return s.repo.Update(id, p)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
