package catalog

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"nextpdv/internal/audit"
	"nextpdv/internal/auth"
	"nextpdv/internal/database"
	"nextpdv/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

// StockRow é uma linha da planilha: código ou nome, numeração e estoque.
type StockRow struct {
	Line  int
	Key   string
	Size  models.Size
	Stock int
}

type variantStock struct {
	ID    uint
	Stock int
}

type stockPlan struct {
	updates   []variantStock
	creates   []models.Variant
	unmatched []string
}

// foldKey remove acentos e caixa: "Tênis CANO Alto" -> "tenis cano alto"
func foldKey(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.Join(strings.Fields(out), " "))
}

func isHeaderRow(row []string) bool {
	if len(row) == 0 {
		return false
	}
	first := foldKey(row[0])
	return strings.Contains(first, "codigo") || strings.Contains(first, "produto") || first == "nome"
}

// ParseStockSheet lê a primeira aba (A=código ou nome, B=numeração, C=estoque).
// Linhas com estoque inválido voltam em invalid com o número da linha.
func ParseStockSheet(r io.Reader) ([]StockRow, []string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Planilha não pôde ser lida")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Planilha sem abas")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Aba não pôde ser lida")
	}

	start := 0
	if len(rows) > 0 && isHeaderRow(rows[0]) {
		start = 1
	}

	var out []StockRow
	var invalid []string
	for i := start; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		if len(row) < 3 {
			invalid = append(invalid, fmt.Sprintf("linha %d: colunas faltando", i+1))
			continue
		}
		size := strings.TrimSpace(row[1])
		stock, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if size == "" || err != nil || stock < 0 {
			invalid = append(invalid, fmt.Sprintf("linha %d: numeração ou estoque inválido", i+1))
			continue
		}
		out = append(out, StockRow{
			Line:  i + 1,
			Key:   strings.TrimSpace(row[0]),
			Size:  models.Size(size),
			Stock: stock,
		})
	}
	return out, invalid, nil
}

// planStockImport casa cada linha com o produto pelo código e depois pelo nome.
// Numeração inexistente vira variação nova.
func planStockImport(products []models.Product, rows []StockRow) stockPlan {
	byCode := make(map[string]*models.Product, len(products))
	byName := make(map[string]*models.Product, len(products))
	for i := range products {
		p := &products[i]
		if p.Code != "" {
			byCode[foldKey(p.Code)] = p
		}
		if _, ok := byName[foldKey(p.Name)]; !ok {
			byName[foldKey(p.Name)] = p
		}
	}

	var plan stockPlan
	pending := map[string]int{}
	for _, r := range rows {
		key := foldKey(r.Key)
		p, ok := byCode[key]
		if !ok {
			p, ok = byName[key]
		}
		if !ok {
			plan.unmatched = append(plan.unmatched, r.Key)
			continue
		}

		found := false
		for _, v := range p.Variants {
			if foldKey(string(v.Size)) == foldKey(string(r.Size)) {
				plan.updates = append(plan.updates, variantStock{ID: v.ID, Stock: r.Stock})
				found = true
				break
			}
		}
		if found {
			continue
		}

		// a mesma numeração nova repetida na planilha fica com o último valor
		newKey := fmt.Sprintf("%d|%s", p.ID, foldKey(string(r.Size)))
		if idx, dup := pending[newKey]; dup {
			plan.creates[idx].Stock = r.Stock
			continue
		}
		pending[newKey] = len(plan.creates)
		plan.creates = append(plan.creates, models.Variant{ProductID: p.ID, Size: r.Size, Stock: r.Stock})
	}
	return plan
}

// POST /produtos/estoque/importar (multipart, campo "arquivo")
func ImportStockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("arquivo")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Arquivo não enviado")
		}
		if !strings.HasSuffix(strings.ToLower(fh.Filename), ".xlsx") {
			return fiber.NewError(fiber.StatusBadRequest, "Envie uma planilha .xlsx")
		}
		file, err := fh.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Arquivo não pôde ser aberto")
		}
		defer file.Close()

		rows, invalid, err := ParseStockSheet(file)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Nenhuma linha válida na planilha")
		}

		var products []models.Product
		if err := database.PreloadProducts(database.DB).Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Produtos não puderam ser carregados")
		}
		plan := planStockImport(products, rows)

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			for _, u := range plan.updates {
				if err := tx.Model(&models.Variant{}).Where("id = ?", u.ID).Update("stock", u.Stock).Error; err != nil {
					return err
				}
			}
			if len(plan.creates) > 0 {
				return tx.Create(&plan.creates).Error
			}
			return nil
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Importação de estoque falhou")
		}

		res := models.StockImportResult{
			Updated:   len(plan.updates),
			Created:   len(plan.creates),
			Unmatched: append([]string{}, plan.unmatched...),
			Invalid:   append([]string{}, invalid...),
		}

		userID, userName := auth.CurrentUser(c)
		_ = audit.WriteLog(database.DB, audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "estoque",
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Importação %s: %d atualizadas, %d criadas", fh.Filename, res.Updated, res.Created),
			After:       res,
		})

		return c.JSON(res)
	}
}
