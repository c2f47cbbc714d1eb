package models

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductCategory string

const (
	CategoryCamiseta ProductCategory = "camiseta"
	CategoryShort    ProductCategory = "short"
	CategoryBuzo     ProductCategory = "buzo"
)

func (c ProductCategory) Valid() bool {
	return c == CategoryCamiseta || c == CategoryShort || c == CategoryBuzo
}

type VariantSize string

const (
	SizeXS VariantSize = "xs"
	SizeS  VariantSize = "s"
	SizeM  VariantSize = "m"
	SizeL  VariantSize = "l"
	SizeXL VariantSize = "xl"
)

func (s VariantSize) Valid() bool {
	switch s {
	case SizeXS, SizeS, SizeM, SizeL, SizeXL:
		return true
	}
	return false
}

// ProductVariant es la entrada de stock por talle embebida en el producto.
type ProductVariant struct {
	Size  VariantSize `json:"size" bson:"size"`
	Stock int64       `json:"stock" bson:"stock"`
	SKU   string      `json:"sku,omitempty" bson:"sku,omitempty"`
}

type Season struct {
	From int `json:"from" bson:"from"`
	To   int `json:"to" bson:"to"`
}

// Product es la entidad central del catálogo. Las referencias se guardan
// como ObjectIDs y se expanden en ProductDetail para las respuestas.
type Product struct {
	ID              primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name            string               `json:"name" bson:"name"`
	Slug            string               `json:"slug" bson:"slug"`
	Category        ProductCategory      `json:"category" bson:"category"`
	Description     string               `json:"description,omitempty" bson:"description,omitempty"`
	Price           float64              `json:"price" bson:"price"`
	Discount        float64              `json:"discount" bson:"discount"`
	Color           []primitive.ObjectID `json:"color" bson:"color"`
	Images          []primitive.ObjectID `json:"images" bson:"images"`
	Variants        []ProductVariant     `json:"variants" bson:"variants"`
	IsFeatured      bool                 `json:"is_featured" bson:"is_featured"`
	Season          Season               `json:"season" bson:"season"`
	Team            *primitive.ObjectID  `json:"team,omitempty" bson:"team,omitempty"`
	League          *primitive.ObjectID  `json:"league,omitempty" bson:"league,omitempty"`
	Country         *primitive.ObjectID  `json:"country,omitempty" bson:"country,omitempty"`
	Tags            []string             `json:"tags,omitempty" bson:"tags,omitempty"`
	MetaTitle       string               `json:"meta_title,omitempty" bson:"meta_title,omitempty"`
	MetaDescription string               `json:"meta_description,omitempty" bson:"meta_description,omitempty"`
	CreatedAt       time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at" bson:"updated_at"`
}

// DiscountedPrice aplica el descuento porcentual sobre el precio.
func (p *Product) DiscountedPrice() float64 {
	if p.Discount > 0 {
		return p.Price * (1 - p.Discount/100)
	}
	return p.Price
}

type ProductDetail struct {
	ID              primitive.ObjectID `json:"id"`
	Name            string             `json:"name"`
	Slug            string             `json:"slug"`
	Category        ProductCategory    `json:"category"`
	Description     string             `json:"description,omitempty"`
	Price           float64            `json:"price"`
	Discount        float64            `json:"discount"`
	DiscountedPrice float64            `json:"discounted_price"`
	Color           []Color            `json:"color"`
	Images          []Media            `json:"images"`
	Variants        []ProductVariant   `json:"variants"`
	IsFeatured      bool               `json:"is_featured"`
	Season          Season             `json:"season"`
	Team            *Team              `json:"team,omitempty"`
	League          *League            `json:"league,omitempty"`
	Country         *Country           `json:"country,omitempty"`
	Tags            []string           `json:"tags,omitempty"`
	MetaTitle       string             `json:"meta_title,omitempty"`
	MetaDescription string             `json:"meta_description,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// CreateProductInput acepta los cuerpos "sucios" que manda el cliente:
// números y booleanos como strings, arrays como JSON embebido en un string.
// Los tipos Flex* hacen la coerción; Validate aplica las reglas de negocio.
type CreateProductInput struct {
	Name            string       `json:"name"`
	Slug            string       `json:"slug"`
	Category        string       `json:"category"`
	Description     string       `json:"description"`
	Price           *FlexFloat64 `json:"price"`
	Discount        *FlexFloat64 `json:"discount"`
	Color           FlexStrings  `json:"color"`
	Images          FlexStrings  `json:"images"`
	ImageURLs       FlexStrings  `json:"image_urls"`
	Variants        FlexVariants `json:"variants"`
	IsFeatured      FlexBool     `json:"is_featured"`
	Season          *SeasonInput `json:"season"`
	Team            string       `json:"team"`
	League          string       `json:"league"`
	Country         string       `json:"country"`
	Tags            FlexStrings  `json:"tags"`
	MetaTitle       string       `json:"meta_title"`
	MetaDescription string       `json:"meta_description"`
}

func (in *CreateProductInput) Validate() error {
	if in.Name == "" || in.Category == "" || in.Price == nil {
		return errors.New("name, category and price are required")
	}
	if !ProductCategory(in.Category).Valid() {
		return fmt.Errorf("invalid category %q", in.Category)
	}
	if float64(*in.Price) < 0 {
		return errors.New("price cannot be negative")
	}
	if in.Discount != nil && (float64(*in.Discount) < 0 || float64(*in.Discount) > 100) {
		return errors.New("discount must be between 0 and 100")
	}
	return validateVariants(in.Variants)
}

type ProductVariantInput struct {
	Size  string    `json:"size"`
	Stock FlexInt64 `json:"stock"`
	SKU   string    `json:"sku"`
}

func validateVariants(variants FlexVariants) error {
	for _, v := range variants {
		if !VariantSize(v.Size).Valid() {
			return fmt.Errorf("invalid variant size %q", v.Size)
		}
		if v.Stock < 0 {
			return errors.New("variant stock cannot be negative")
		}
	}
	return nil
}

// UpdateProductInput: solo los campos presentes se actualizan.
// season.from y season.to se mergean campo a campo contra lo almacenado.
type UpdateProductInput struct {
	Name            *string      `json:"name,omitempty"`
	Slug            *string      `json:"slug,omitempty"`
	Category        *string      `json:"category,omitempty"`
	Description     *string      `json:"description,omitempty"`
	Price           *FlexFloat64 `json:"price,omitempty"`
	Discount        *FlexFloat64 `json:"discount,omitempty"`
	Color           FlexStrings  `json:"color,omitempty"`
	Images          FlexStrings  `json:"images,omitempty"`
	Variants        FlexVariants `json:"variants,omitempty"`
	IsFeatured      *FlexBool    `json:"is_featured,omitempty"`
	Season          *SeasonInput `json:"season,omitempty"`
	Team            *string      `json:"team,omitempty"`
	League          *string      `json:"league,omitempty"`
	Country         *string      `json:"country,omitempty"`
	Tags            FlexStrings  `json:"tags,omitempty"`
	MetaTitle       *string      `json:"meta_title,omitempty"`
	MetaDescription *string      `json:"meta_description,omitempty"`
}

func (in *UpdateProductInput) Validate() error {
	if in.Name != nil && *in.Name == "" {
		return errors.New("name cannot be empty")
	}
	if in.Category != nil && !ProductCategory(*in.Category).Valid() {
		return fmt.Errorf("invalid category %q", *in.Category)
	}
	if in.Price != nil && float64(*in.Price) < 0 {
		return errors.New("price cannot be negative")
	}
	if in.Discount != nil && (float64(*in.Discount) < 0 || float64(*in.Discount) > 100) {
		return errors.New("discount must be between 0 and 100")
	}
	return validateVariants(in.Variants)
}
