package cocktails

import (
	"bytes"
	"fmt"
	"net/http"

	"tabu/models"
	"tabu/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GET /api/cocktails/:id/pdf
// Renders a printable recipe card with a QR code linking back to the
// recipe page.
func (h *Handler) ExportPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Cóctel no encontrado")
		return
	}

	ctx := r.Context()

	var cocktail models.Cocktail
	if err := h.store.Cocktails.FindOne(ctx, bson.M{"_id": id}).Decode(&cocktail); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Cóctel no encontrado")
		return
	}

	_, ingredients := h.expandReferences(ctx, &cocktail)
	names := make(map[primitive.ObjectID]string, len(ingredients))
	for _, ing := range ingredients {
		names[ing.ID] = ing.Name
	}

	recipeURL := fmt.Sprintf("%s/cocteles/%s", h.cfg.FrontendURL, cocktail.ID.Hex())
	qrPNG, err := qrcode.Encode(recipeURL, qrcode.Medium, 256)
	if err != nil {
		h.internalError(w, err)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	translator := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 12, translator(cocktail.Name))
	pdf.Ln(14)

	pdf.SetFont("Arial", "I", 11)
	pdf.MultiCell(130, 6, translator(cocktail.Description), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, translator(fmt.Sprintf("Categoría: %s  ·  Dificultad: %s  ·  Vaso: %s",
		cocktail.Category, cocktail.Difficulty, cocktail.GlassType)))
	pdf.Ln(7)
	pdf.Cell(0, 7, translator(fmt.Sprintf("Preparación: %d min  ·  Porciones: %d",
		cocktail.PreparationTime, cocktail.Servings)))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Ingredientes")
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 11)
	for _, ing := range cocktail.Ingredients {
		name := names[ing.Ingredient]
		if name == "" {
			name = ing.Ingredient.Hex()
		}
		pdf.Cell(0, 6, translator(fmt.Sprintf("- %s %s de %s", ing.Quantity, ing.Unit, name)))
		pdf.Ln(6)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, translator("Preparación"))
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 11)
	for _, ins := range cocktail.Instructions {
		pdf.MultiCell(170, 6, translator(fmt.Sprintf("%d. %s", ins.Step, ins.Description)), "", "L", false)
	}

	if cocktail.Garnish != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "I", 10)
		pdf.Cell(0, 6, translator("Garnish: "+cocktail.Garnish))
	}

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 160, 20, 35, 35, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		h.internalError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=coctel-"+cocktail.ID.Hex()+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
