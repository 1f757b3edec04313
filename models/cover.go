package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// LightZone describes where in the home the plant sits relative to light.
type LightZone string

// Light zone values selectable in the cover builder
const (
	LightZoneHigh LightZone = "high"
	LightZoneLow  LightZone = "low"
	LightZoneNo   LightZone = "no"
)

// WindowDirection is the compass direction of the nearest window.
type WindowDirection string

// Window direction values, "idk" when the owner doesn't know
const (
	WindowEast    WindowDirection = "east"
	WindowWest    WindowDirection = "west"
	WindowNorth   WindowDirection = "north"
	WindowSouth   WindowDirection = "south"
	WindowUnknown WindowDirection = "idk"
)

// WateringInterval is the feeding schedule printed on the cover.
type WateringInterval string

// Watering interval values
const (
	WaterEvery      WateringInterval = "every"
	WaterEveryOther WateringInterval = "every-other"
	WaterEveryThird WateringInterval = "every-third"
	WaterMonthly    WateringInterval = "monthly"
)

// SoilCatalog lists the soil components the cover builder offers. The store
// treats the selection as an opaque subset of this list.
var SoilCatalog = []string{
	"pumice",
	"bark",
	"charcoal",
	"coco-coir",
	"sphagnum",
	"perlite",
	"potting-soil",
	"sand",
	"leca",
}

// Cover holds the structure for the covers collection in mongo. Field names
// mirror the storefront wire format, so both bson and json use snake_case.
type Cover struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ShopifyCustomerID string             `json:"shopify_customer_id,omitempty" bson:"shopify_customer_id,omitempty"`
	UserName          string             `json:"user_name" bson:"user_name"`
	PlantName         string             `json:"plant_name" bson:"plant_name"`
	PhotoURL          string             `json:"photo_url" bson:"photo_url"`
	LightZone         LightZone          `json:"light_zone" bson:"light_zone"`
	GetsNaturalLight  bool               `json:"gets_natural_light" bson:"gets_natural_light"`
	WindowDirection   WindowDirection    `json:"window_direction,omitempty" bson:"window_direction,omitempty"`
	UsesGrowLight     bool               `json:"uses_grow_light" bson:"uses_grow_light"`
	Temperature       int                `json:"temperature" bson:"temperature"`
	Humidity          int                `json:"humidity" bson:"humidity"`
	WateringInterval  WateringInterval   `json:"watering_interval" bson:"watering_interval"`
	UsesFoliarFeed    bool               `json:"uses_foliar_feed" bson:"uses_foliar_feed"`
	Nutrients         string             `json:"nutrients,omitempty" bson:"nutrients,omitempty"`
	SoilComponents    []string           `json:"soil_components" bson:"soil_components"`
	IsReported        bool               `json:"is_reported" bson:"is_reported"`
	ReportCount       int                `json:"report_count" bson:"report_count"`
	IsHidden          bool               `json:"is_hidden" bson:"is_hidden"`
	CreatedAt         primitive.DateTime `json:"created_at" bson:"created_at"`
}
