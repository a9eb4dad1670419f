package models

// LocalizedString is a locale-keyed text mapping as returned by the commerce
// platform. Not all locales are guaranteed present.
type LocalizedString map[string]string

// Get resolves a value by trying each locale in order and returns the first
// hit, or the empty string when none of them is present.
func (ls LocalizedString) Get(locales ...string) string {
	for _, locale := range locales {
		if v, ok := ls[locale]; ok && v != "" {
			return v
		}
	}
	return ""
}

// TokenResponse is the OAuth client-credentials grant response.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Scope       string `json:"scope"`
}

// ProductProjection is the raw product aggregate from the platform's
// product-projection search.
type ProductProjection struct {
	ID            string           `json:"id"`
	Name          LocalizedString  `json:"name"`
	Description   LocalizedString  `json:"description"`
	MasterVariant ProductVariant   `json:"masterVariant"`
	Variants      []ProductVariant `json:"variants"`
}

type ProductVariant struct {
	ID     int     `json:"id"`
	Sku    string  `json:"sku"`
	Images []Image `json:"images"`
	Prices []Price `json:"prices"`
}

type Image struct {
	URL        string          `json:"url"`
	Dimensions ImageDimensions `json:"dimensions"`
}

type ImageDimensions struct {
	W int `json:"w"`
	H int `json:"h"`
}

type Price struct {
	Value      Money            `json:"value"`
	Country    string           `json:"country,omitempty"`
	Discounted *DiscountedPrice `json:"discounted,omitempty"`
}

type Money struct {
	Type           string `json:"type,omitempty"`
	CurrencyCode   string `json:"currencyCode"`
	CentAmount     int64  `json:"centAmount"`
	FractionDigits int    `json:"fractionDigits,omitempty"`
}

type DiscountedPrice struct {
	Value Money `json:"value"`
}

// ProductProjectionSearchResponse is the paged envelope around search results.
type ProductProjectionSearchResponse struct {
	Limit   int                 `json:"limit"`
	Offset  int                 `json:"offset"`
	Count   int                 `json:"count"`
	Total   int                 `json:"total"`
	Results []ProductProjection `json:"results"`
}

// ProductData is the normalized record returned to callers. Price is in
// major currency units.
type ProductData struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Sku         string  `json:"sku"`
}
