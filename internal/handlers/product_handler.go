package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tifosi-api/internal/models"
	"tifosi-api/internal/repository"
	"tifosi-api/internal/utils"
)

// Campos por los que se puede ordenar el listado de productos. El nombre de
// campo nunca se pasa crudo a la query: cualquier otro valor es un 400.
var productSortFields = map[string]bool{
	"created_at":  true,
	"name":        true,
	"price":       true,
	"discount":    true,
	"is_featured": true,
}

type ProductHandler struct {
	products  productStore
	media     mediaStore
	colors    colorStore
	teams     teamStore
	leagues   leagueStore
	countries countryStore
}

func NewProductHandler(products productStore, media mediaStore, colors colorStore, teams teamStore, leagues leagueStore, countries countryStore) *ProductHandler {
	return &ProductHandler{
		products:  products,
		media:     media,
		colors:    colors,
		teams:     teams,
		leagues:   leagues,
		countries: countries,
	}
}

// GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	page, limit := utils.ParsePagination(c, 12)

	filter := bson.M{}
	if category := c.Query("category"); category != "" {
		if !models.ProductCategory(category).Valid() {
			respondError(c, http.StatusBadRequest, "Invalid category", nil)
			return
		}
		filter["category"] = category
	}
	for _, ref := range []string{"team", "league", "country"} {
		if raw := c.Query(ref); raw != "" {
			id, err := primitive.ObjectIDFromHex(raw)
			if err != nil {
				respondError(c, http.StatusBadRequest, "Invalid "+ref+" ID", err)
				return
			}
			filter[ref] = id
		}
	}

	sort, err := parseProductSort(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	products, total, err := h.products.FindAll(c.Request.Context(), filter, sort, page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error fetching products", err)
		return
	}

	details, err := h.populate(c.Request.Context(), products)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error fetching products", err)
		return
	}

	respondList(c, details, utils.NewPagination(page, limit, total))
}

// GET /api/products/:slug
func (h *ProductHandler) GetBySlug(c *gin.Context) {
	product, err := h.products.FindBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Product not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Error fetching product", err)
		return
	}

	details, err := h.populate(c.Request.Context(), []models.Product{*product})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error fetching product", err)
		return
	}

	respondData(c, http.StatusOK, details[0])
}

// POST /api/products/create
func (h *ProductHandler) Create(c *gin.Context) {
	var in models.CreateProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := in.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ctx := c.Request.Context()

	// Todas las imágenes referenciadas tienen que existir; si falta una
	// sola no se escribe nada (todo-o-nada).
	imageIDs, err := parseObjectIDs(in.Images)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid image ID", err)
		return
	}
	if len(imageIDs) > 0 {
		exist, err := h.media.AllExist(ctx, imageIDs)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Error creating product", err)
			return
		}
		if !exist {
			respondError(c, http.StatusBadRequest, "Some image IDs do not exist in the database", nil)
			return
		}
	}

	colorIDs, err := parseObjectIDs(in.Color)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid color ID", err)
		return
	}
	if len(colorIDs) > 0 {
		colorsByID, err := h.colors.FindMapByIDs(ctx, colorIDs)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Error creating product", err)
			return
		}
		for _, id := range colorIDs {
			if _, exists := colorsByID[id]; !exists {
				respondError(c, http.StatusBadRequest, "Some color IDs do not exist in the database", nil)
				return
			}
		}
	}

	product := &models.Product{
		Name:            in.Name,
		Category:        models.ProductCategory(in.Category),
		Description:     in.Description,
		Price:           float64(*in.Price),
		Color:           colorIDs,
		Variants:        buildVariants(in.Variants),
		IsFeatured:      bool(in.IsFeatured),
		Tags:            in.Tags,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
	}
	if in.Discount != nil {
		product.Discount = float64(*in.Discount)
	}
	if in.Season != nil {
		if in.Season.From != nil {
			product.Season.From = int(*in.Season.From)
		}
		if in.Season.To != nil {
			product.Season.To = int(*in.Season.To)
		}
	}

	if ok := h.resolveReference(c, in.Team, "team", &product.Team); !ok {
		return
	}
	if ok := h.resolveReference(c, in.League, "league", &product.League); !ok {
		return
	}
	if ok := h.resolveReference(c, in.Country, "country", &product.Country); !ok {
		return
	}

	// URLs crudas: se sintetiza un registro Media por cada una, sin
	// inspección real de la imagen (dimensiones placeholder).
	for _, rawURL := range in.ImageURLs {
		media := &models.Media{
			PublicID:  "external/" + uuid.NewString(),
			URL:       rawURL,
			SecureURL: rawURL,
			Format:    utils.ImageFormatFromURL(rawURL),
			Width:     800,
			Height:    600,
			Folder:    "external",
		}
		if err := h.media.Create(ctx, media); err != nil {
			respondError(c, http.StatusInternalServerError, "Error creating product", err)
			return
		}
		imageIDs = append(imageIDs, media.ID)
	}
	product.Images = imageIDs

	slug := in.Slug
	if slug == "" {
		slug = in.Name
	}
	product.Slug = utils.Slugify(slug)

	if err := h.products.Create(ctx, product); err != nil {
		if repository.IsDuplicateKey(err) {
			respondError(c, http.StatusConflict, "A product with that slug already exists", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Error creating product", err)
		return
	}

	details, err := h.populate(ctx, []models.Product{*product})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error creating product", err)
		return
	}

	respondCreated(c, fmt.Sprintf("Product created successfully with %d images", len(imageIDs)), details[0])
}

// PUT /api/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseParamID(c, "id")
	if !ok {
		return
	}

	var in models.UpdateProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := in.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ctx := c.Request.Context()
	update := bson.M{}

	if in.Name != nil {
		update["name"] = *in.Name
	}
	if in.Slug != nil {
		update["slug"] = utils.Slugify(*in.Slug)
	}
	if in.Category != nil {
		update["category"] = *in.Category
	}
	if in.Description != nil {
		update["description"] = *in.Description
	}
	if in.Price != nil {
		update["price"] = float64(*in.Price)
	}
	if in.Discount != nil {
		update["discount"] = float64(*in.Discount)
	}
	if in.IsFeatured != nil {
		update["is_featured"] = bool(*in.IsFeatured)
	}
	if in.Tags != nil {
		update["tags"] = []string(in.Tags)
	}
	if in.MetaTitle != nil {
		update["meta_title"] = *in.MetaTitle
	}
	if in.MetaDescription != nil {
		update["meta_description"] = *in.MetaDescription
	}
	if in.Variants != nil {
		update["variants"] = buildVariants(in.Variants)
	}

	if in.Images != nil {
		imageIDs, err := parseObjectIDs(in.Images)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid image ID", err)
			return
		}
		exist, err := h.media.AllExist(ctx, imageIDs)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Error updating product", err)
			return
		}
		if !exist {
			respondError(c, http.StatusBadRequest, "Some image IDs do not exist in the database", nil)
			return
		}
		update["images"] = imageIDs
	}

	if in.Color != nil {
		colorIDs, err := parseObjectIDs(in.Color)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid color ID", err)
			return
		}
		update["color"] = colorIDs
	}

	if in.Team != nil {
		var ref *primitive.ObjectID
		if ok := h.resolveReference(c, *in.Team, "team", &ref); !ok {
			return
		}
		update["team"] = ref
	}
	if in.League != nil {
		var ref *primitive.ObjectID
		if ok := h.resolveReference(c, *in.League, "league", &ref); !ok {
			return
		}
		update["league"] = ref
	}
	if in.Country != nil {
		var ref *primitive.ObjectID
		if ok := h.resolveReference(c, *in.Country, "country", &ref); !ok {
			return
		}
		update["country"] = ref
	}

	// season.from y season.to se mergean contra lo almacenado: mandar solo
	// uno de los dos no pisa el otro.
	if in.Season != nil {
		existing, err := h.products.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				respondError(c, http.StatusNotFound, "Product not found", nil)
				return
			}
			respondError(c, http.StatusInternalServerError, "Error updating product", err)
			return
		}
		season := existing.Season
		if in.Season.From != nil {
			season.From = int(*in.Season.From)
		}
		if in.Season.To != nil {
			season.To = int(*in.Season.To)
		}
		update["season"] = season
	}

	if len(update) == 0 {
		respondError(c, http.StatusBadRequest, "No fields to update", nil)
		return
	}

	product, err := h.products.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Product not found", nil)
			return
		}
		if repository.IsDuplicateKey(err) {
			respondError(c, http.StatusConflict, "A product with that slug already exists", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Error updating product", err)
		return
	}

	details, err := h.populate(ctx, []models.Product{*product})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error updating product", err)
		return
	}

	respondUpdated(c, "Product updated successfully", details[0])
}

// resolveReference valida un id opcional de team/league/country. Responde el
// error y devuelve false si el id es inválido o el documento no existe.
func (h *ProductHandler) resolveReference(c *gin.Context, raw, kind string, out **primitive.ObjectID) bool {
	if raw == "" {
		return true
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid "+kind+" ID", err)
		return false
	}
	ctx := c.Request.Context()

	switch kind {
	case "team":
		_, err = h.teams.FindByID(ctx, id)
	case "league":
		_, err = h.leagues.FindByID(ctx, id)
	case "country":
		_, err = h.countries.FindByID(ctx, id)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusBadRequest, titleCase(kind)+" not found", nil)
			return false
		}
		respondError(c, http.StatusInternalServerError, "Error resolving "+kind, err)
		return false
	}

	*out = &id
	return true
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

func buildVariants(inputs models.FlexVariants) []models.ProductVariant {
	variants := make([]models.ProductVariant, 0, len(inputs))
	for _, v := range inputs {
		variants = append(variants, models.ProductVariant{
			Size:  models.VariantSize(v.Size),
			Stock: int64(v.Stock),
			SKU:   v.SKU,
		})
	}
	return variants
}

func parseProductSort(c *gin.Context) (bson.D, error) {
	field := c.DefaultQuery("sort", "created_at")
	if !productSortFields[field] {
		return nil, fmt.Errorf("unsupported sort field %q", field)
	}

	order := -1
	switch c.DefaultQuery("order", "desc") {
	case "desc":
	case "asc":
		order = 1
	default:
		return nil, errors.New("order must be asc or desc")
	}

	return bson.D{{Key: field, Value: order}}, nil
}

func (h *ProductHandler) populate(ctx context.Context, products []models.Product) ([]models.ProductDetail, error) {
	var mediaIDs, colorIDs, teamIDs, leagueIDs, countryIDs []primitive.ObjectID
	for _, p := range products {
		mediaIDs = append(mediaIDs, p.Images...)
		colorIDs = append(colorIDs, p.Color...)
		if p.Team != nil {
			teamIDs = append(teamIDs, *p.Team)
		}
		if p.League != nil {
			leagueIDs = append(leagueIDs, *p.League)
		}
		if p.Country != nil {
			countryIDs = append(countryIDs, *p.Country)
		}
	}

	mediaByID, err := h.media.FindMapByIDs(ctx, mediaIDs)
	if err != nil {
		return nil, err
	}
	colorsByID, err := h.colors.FindMapByIDs(ctx, colorIDs)
	if err != nil {
		return nil, err
	}
	teamsByID, err := h.teams.FindMapByIDs(ctx, teamIDs)
	if err != nil {
		return nil, err
	}
	leaguesByID, err := h.leagues.FindMapByIDs(ctx, leagueIDs)
	if err != nil {
		return nil, err
	}
	countriesByID, err := h.countries.FindMapByIDs(ctx, countryIDs)
	if err != nil {
		return nil, err
	}

	details := make([]models.ProductDetail, 0, len(products))
	for _, p := range products {
		detail := models.ProductDetail{
			ID:              p.ID,
			Name:            p.Name,
			Slug:            p.Slug,
			Category:        p.Category,
			Description:     p.Description,
			Price:           p.Price,
			Discount:        p.Discount,
			DiscountedPrice: p.DiscountedPrice(),
			Color:           make([]models.Color, 0, len(p.Color)),
			Images:          make([]models.Media, 0, len(p.Images)),
			Variants:        p.Variants,
			IsFeatured:      p.IsFeatured,
			Season:          p.Season,
			Tags:            p.Tags,
			MetaTitle:       p.MetaTitle,
			MetaDescription: p.MetaDescription,
			CreatedAt:       p.CreatedAt,
			UpdatedAt:       p.UpdatedAt,
		}
		// Las referencias colgantes se omiten en vez de devolver ids pelados
		for _, id := range p.Images {
			if media, exists := mediaByID[id]; exists {
				detail.Images = append(detail.Images, media)
			}
		}
		for _, id := range p.Color {
			if color, exists := colorsByID[id]; exists {
				detail.Color = append(detail.Color, color)
			}
		}
		if p.Team != nil {
			if team, exists := teamsByID[*p.Team]; exists {
				detail.Team = &team
			}
		}
		if p.League != nil {
			if league, exists := leaguesByID[*p.League]; exists {
				detail.League = &league
			}
		}
		if p.Country != nil {
			if country, exists := countriesByID[*p.Country]; exists {
				detail.Country = &country
			}
		}
		details = append(details, detail)
	}
	return details, nil
}
