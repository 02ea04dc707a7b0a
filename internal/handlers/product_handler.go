package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"shopBack/internal/models"
	"shopBack/internal/services"
	"shopBack/utils"
)

type ProductHandler struct {
	Service *services.ProductService
}

// CreateProduct accepts a multipart form with the product fields plus any
// number of files under "images"/"image". Files go to S3 first; the stored
// URLs travel with the product row.
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeJSONError(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil || price < 0 {
		writeJSONError(w, "invalid price", http.StatusBadRequest)
		return
	}
	stock, err := strconv.Atoi(r.FormValue("stock"))
	if err != nil || stock < 0 {
		writeJSONError(w, "invalid stock", http.StatusBadRequest)
		return
	}

	product := models.Product{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Description: r.FormValue("description"),
		Price:       price,
		Category:    strings.TrimSpace(r.FormValue("category")),
		Stock:       stock,
	}
	if product.Name == "" {
		writeJSONError(w, "name is required", http.StatusBadRequest)
		return
	}

	for _, header := range collectImageFiles(r.MultipartForm, "images", "image") {
		ct, err := imageContentType(header.Filename)
		if err != nil {
			writeJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		data, err := readImageFile(header)
		if err != nil {
			writeJSONError(w, "failed to read image", http.StatusBadRequest)
			return
		}
		url, err := utils.UploadFileToS3(data, imageObjectName(header.Filename), "products", ct)
		if err != nil {
			writeJSONError(w, "failed to store image", http.StatusInternalServerError)
			return
		}
		product.Images = append(product.Images, url)
	}

	created, err := h.Service.CreateProduct(r.Context(), product)
	if err != nil {
		writeJSONError(w, "failed to create product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	filter := models.ProductFilter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("q"),
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && page > 1 && filter.Limit > 0 {
		filter.Offset = (page - 1) * filter.Limit
	}

	products, err := h.Service.GetProducts(r.Context(), filter)
	if err != nil {
		writeJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeJSONError(w, "invalid product id", http.StatusBadRequest)
		return
	}
	product, err := h.Service.GetProductByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeJSONError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		writeJSONError(w, "invalid body", http.StatusBadRequest)
		return
	}
	product.ID = id

	updated, err := h.Service.UpdateProduct(r.Context(), product)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeJSONError(w, "invalid product id", http.StatusBadRequest)
		return
	}
	if err := h.Service.DeleteProduct(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
