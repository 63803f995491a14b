package brave

// 上游响应的反序列化结构（只解码实际消费的字段）

type webSearchResponse struct {
	Web struct {
		Results []webResult `json:"results"`
	} `json:"web"`
	Locations struct {
		Results []locationRef `json:"results"`
	} `json:"locations"`
}

type webResult struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type locationRef struct {
	ID string `json:"id"`
}

type poisResponse struct {
	Results []poi `json:"results"`
}

type poi struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Address      poiAddress `json:"address"`
	Phone        string     `json:"phone"`
	Rating       *poiRating `json:"rating"`
	PriceRange   string     `json:"priceRange"`
	OpeningHours []string   `json:"openingHours"`
	Reviews      []string   `json:"reviews"`
}

type poiAddress struct {
	StreetAddress   string `json:"streetAddress"`
	AddressLocality string `json:"addressLocality"`
	AddressRegion   string `json:"addressRegion"`
	PostalCode      string `json:"postalCode"`
}

type poiRating struct {
	RatingValue float64 `json:"ratingValue"`
	RatingCount int     `json:"ratingCount"`
}

type descriptionsResponse struct {
	Descriptions map[string]string `json:"descriptions"`
}
