package services

import (
	"context"
	"log"
	"path"

	"shopBack/internal/models"
	"shopBack/internal/repositories"
	"shopBack/utils"
)

type ProductService struct {
	ProductRepo *repositories.ProductRepository
}

func (s *ProductService) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	return s.ProductRepo.CreateProduct(ctx, product)
}

func (s *ProductService) GetProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	return s.ProductRepo.GetProducts(ctx, filter)
}

func (s *ProductService) GetProductByID(ctx context.Context, id int) (models.Product, error) {
	return s.ProductRepo.GetProductByID(ctx, id)
}

func (s *ProductService) UpdateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	return s.ProductRepo.UpdateProduct(ctx, product)
}

// DeleteProduct removes the row and then best-effort deletes the stored
// image objects; a failed object delete only leaves an orphan in storage.
func (s *ProductService) DeleteProduct(ctx context.Context, id int) error {
	product, err := s.ProductRepo.GetProductByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.ProductRepo.DeleteProduct(ctx, id); err != nil {
		return err
	}

	for _, url := range product.Images {
		if name := path.Base(url); name != "" && name != "." {
			if err := utils.DeleteFileFromS3(name, "products"); err != nil {
				log.Printf("delete image %s: %v", name, err)
			}
		}
	}
	return nil
}
