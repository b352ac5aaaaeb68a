package pdvclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"nextpdv/internal/models"

	"github.com/pkg/errors"
)

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	err := c.do(ctx, http.MethodGet, "/produtos", nil, &out)
	return out, err
}

func (c *Client) CreateProduct(ctx context.Context, in models.ProductInput) (models.Product, error) {
	var out models.Product
	err := c.do(ctx, http.MethodPost, "/produtos", in, &out)
	return out, err
}

func (c *Client) UpdateProduct(ctx context.Context, id uint, in models.ProductInput) (models.Product, error) {
	var out models.Product
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/produtos/%d", id), in, &out)
	return out, err
}

func (c *Client) DeleteProduct(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/produtos/%d", id), nil, nil)
}

func (c *Client) AddVariant(ctx context.Context, productID uint, in models.VariantInput) (models.Variant, error) {
	var out models.Variant
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/produtos/%d/variacoes", productID), in, &out)
	return out, err
}

func (c *Client) UpdateVariantStock(ctx context.Context, variantID uint, stock int) (models.Variant, error) {
	var out models.Variant
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/produtos/variacoes/%d", variantID), models.StockUpdate{Stock: &stock}, &out)
	return out, err
}

func (c *Client) DeleteVariant(ctx context.Context, variantID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/produtos/variacoes/%d", variantID), nil, nil)
}

func multipartBody(field, filename string, r io.Reader) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		return nil, "", errors.Wrap(err, "montar formulário")
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, "", errors.Wrap(err, "ler arquivo")
	}
	if err := w.Close(); err != nil {
		return nil, "", errors.Wrap(err, "fechar formulário")
	}
	return &buf, w.FormDataContentType(), nil
}

// UploadImage envia o arquivo no campo multipart "imagem" e devolve a URL relativa.
func (c *Client) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	body, contentType, err := multipartBody("imagem", filename, r)
	if err != nil {
		return "", err
	}
	var out models.UploadResponse
	if err := c.send(ctx, http.MethodPost, "/produtos/upload", body, contentType, &out); err != nil {
		return "", err
	}
	return out.ImageURL, nil
}

// ImportStock envia a planilha .xlsx de estoque (campo "arquivo").
func (c *Client) ImportStock(ctx context.Context, filename string, r io.Reader) (models.StockImportResult, error) {
	var out models.StockImportResult
	body, contentType, err := multipartBody("arquivo", filename, r)
	if err != nil {
		return out, err
	}
	err = c.send(ctx, http.MethodPost, "/produtos/estoque/importar", body, contentType, &out)
	return out, err
}
