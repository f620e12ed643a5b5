package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/ordico-pos/internal/application/dto"
	"github.com/jhoicas/ordico-pos/internal/domain"
	"github.com/jhoicas/ordico-pos/internal/domain/entity"
	"github.com/jhoicas/ordico-pos/internal/domain/repository"
	"github.com/jhoicas/ordico-pos/pkg/textutil"
)

// ImportTxRunner ejecuta la importación masiva dentro de una transacción:
// o entran todas las filas o no entra ninguna.
type ImportTxRunner interface {
	Run(ctx context.Context, fn func(products repository.ProductRepository) error) error
}

// ProductUseCase casos de uso del catálogo de productos: CRUD, búsqueda e
// importación masiva desde planilla.
type ProductUseCase struct {
	repo repository.ProductRepository
	tx   ImportTxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, tx ImportTxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, tx: tx}
}

// Create crea un producto nuevo. Cantidad o precio negativos -> ErrInvalidInput;
// nombre existente -> DuplicateKeyError.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Quantity < 0 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Brand:     in.Brand,
		Quantity:  in.Quantity,
		Price:     in.Price,
		Category:  in.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	product.Normalize()
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Miss -> (nil, nil).
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil || product == nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto existente. ID ausente -> ErrNotFound.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if product.Name == "" || product.Quantity < 0 || product.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product.Normalize()
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID. Idempotente: informa si había fila.
func (uc *ProductUseCase) Delete(id string) (bool, error) {
	return uc.repo.Delete(id)
}

// List devuelve el catálogo completo.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	return uc.listFiltered("")
}

// Search filtra el catálogo por substring en nombre, marca o categoría,
// ignorando acentos y mayúsculas ("lacteos" encuentra "Lácteos").
func (uc *ProductUseCase) Search(query string) (*dto.ProductListResponse, error) {
	return uc.listFiltered(query)
}

func (uc *ProductUseCase) listFiltered(query string) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		if query != "" &&
			!textutil.ContainsFold(p.Name, query) &&
			!textutil.ContainsFold(p.Brand, query) &&
			!textutil.ContainsFold(p.Category, query) {
			continue
		}
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Count devuelve la cantidad de productos registrados.
func (uc *ProductUseCase) Count() (int, error) {
	return uc.repo.Count()
}

// BulkImport inserta todas las filas de la planilla en una sola transacción.
// Cualquier fila inválida o duplicada aborta la importación completa
// (todo-o-nada); devuelve la cantidad insertada.
func (uc *ProductUseCase) BulkImport(ctx context.Context, rows []dto.ProductImportRow) (int, error) {
	if len(rows) == 0 {
		return 0, domain.ErrInvalidInput
	}
	for _, row := range rows {
		if row.Name == "" || row.Quantity < 0 || row.Price.IsNegative() {
			return 0, domain.ErrInvalidInput
		}
	}
	err := uc.tx.Run(ctx, func(products repository.ProductRepository) error {
		now := time.Now()
		for _, row := range rows {
			product := &entity.Product{
				ID:        uuid.New().String(),
				Name:      row.Name,
				Brand:     row.Brand,
				Quantity:  row.Quantity,
				Price:     row.Price,
				Category:  row.Category,
				CreatedAt: now,
				UpdatedAt: now,
			}
			product.Normalize()
			if err := products.Create(product); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Brand:     p.Brand,
		Quantity:  p.Quantity,
		Price:     p.Price,
		Category:  p.Category,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
