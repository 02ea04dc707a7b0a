package repositories

import (
	"context"
	"database/sql"
	"errors"

	"shopBack/internal/models"
)

type ProductRepository struct {
	DB *sql.DB
}

func (r *ProductRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	query := `INSERT INTO products (name, description, price, category, stock, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, NOW(), NOW())`
	res, err := r.DB.ExecContext(ctx, query, product.Name, product.Description, product.Price, product.Category, product.Stock)
	if err != nil {
		return models.Product{}, err
	}
	id, _ := res.LastInsertId()
	product.ID = int(id)

	for _, url := range product.Images {
		if _, err := r.DB.ExecContext(ctx,
			`INSERT INTO product_images (product_id, url, created_at) VALUES (?, ?, NOW())`,
			product.ID, url); err != nil {
			return models.Product{}, err
		}
	}
	return r.GetProductByID(ctx, product.ID)
}

func (r *ProductRepository) GetProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	query := `SELECT id, name, description, price, category, stock, created_at, updated_at FROM products`
	var args []any
	var where []string

	if filter.Category != "" {
		where = append(where, `category = ?`)
		args = append(args, filter.Category)
	}
	if filter.Search != "" {
		where = append(where, `(name LIKE ? OR description LIKE ?)`)
		like := "%" + filter.Search + "%"
		args = append(args, like, like)
	}
	for i, cond := range where {
		if i == 0 {
			query += ` WHERE ` + cond
		} else {
			query += ` AND ` + cond
		}
	}
	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range products {
		images, err := r.productImages(ctx, products[i].ID)
		if err != nil {
			return nil, err
		}
		products[i].Images = images
	}
	return products, nil
}

func (r *ProductRepository) GetProductByID(ctx context.Context, id int) (models.Product, error) {
	var p models.Product
	query := `SELECT id, name, description, price, category, stock, created_at, updated_at FROM products WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, models.ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, err
	}
	p.Images, err = r.productImages(ctx, p.ID)
	return p, err
}

func (r *ProductRepository) UpdateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	query := `UPDATE products SET name = ?, description = ?, price = ?, category = ?, stock = ?, updated_at = NOW() WHERE id = ?`
	if _, err := r.DB.ExecContext(ctx, query, product.Name, product.Description, product.Price, product.Category, product.Stock, product.ID); err != nil {
		return models.Product{}, err
	}
	return r.GetProductByID(ctx, product.ID)
}

func (r *ProductRepository) DeleteProduct(ctx context.Context, id int) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM product_images WHERE product_id = ?`, id); err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) productImages(ctx context.Context, productID int) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT url FROM product_images WHERE product_id = ? ORDER BY id`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, rows.Err()
}
