package domain

// StoreTheme is the admin-editable branding document. Rendering is the
// storefront client's job; the service only stores and patches it.
type StoreTheme struct {
	StoreName       string `json:"storeName"`
	LogoURL         string `json:"logoUrl,omitempty"`
	PrimaryColor    string `json:"primaryColor"`
	AccentColor     string `json:"accentColor"`
	BannerText      string `json:"bannerText,omitempty"`
	HeroImage       string `json:"heroImage,omitempty"`
	FontFamily      string `json:"fontFamily,omitempty"`
	Language        string `json:"language"`
	SocialFacebook  string `json:"socialFacebook,omitempty"`
	SocialInstagram string `json:"socialInstagram,omitempty"`
	SocialWhatsApp  string `json:"socialWhatsApp,omitempty"`
}

// ThemePatch is a partial update of StoreTheme. Nil fields keep the current
// value; non-nil fields win. Explicit per-field precedence replaces the
// legacy spread-and-override object merging.
type ThemePatch struct {
	StoreName       *string `json:"storeName,omitempty"`
	LogoURL         *string `json:"logoUrl,omitempty"`
	PrimaryColor    *string `json:"primaryColor,omitempty"`
	AccentColor     *string `json:"accentColor,omitempty"`
	BannerText      *string `json:"bannerText,omitempty"`
	HeroImage       *string `json:"heroImage,omitempty"`
	FontFamily      *string `json:"fontFamily,omitempty"`
	Language        *string `json:"language,omitempty"`
	SocialFacebook  *string `json:"socialFacebook,omitempty"`
	SocialInstagram *string `json:"socialInstagram,omitempty"`
	SocialWhatsApp  *string `json:"socialWhatsApp,omitempty"`
}

// Apply merges the patch into t, field by field.
func (p ThemePatch) Apply(t StoreTheme) StoreTheme {
	if p.StoreName != nil {
		t.StoreName = *p.StoreName
	}
	if p.LogoURL != nil {
		t.LogoURL = *p.LogoURL
	}
	if p.PrimaryColor != nil {
		t.PrimaryColor = *p.PrimaryColor
	}
	if p.AccentColor != nil {
		t.AccentColor = *p.AccentColor
	}
	if p.BannerText != nil {
		t.BannerText = *p.BannerText
	}
	if p.HeroImage != nil {
		t.HeroImage = *p.HeroImage
	}
	if p.FontFamily != nil {
		t.FontFamily = *p.FontFamily
	}
	if p.Language != nil {
		t.Language = *p.Language
	}
	if p.SocialFacebook != nil {
		t.SocialFacebook = *p.SocialFacebook
	}
	if p.SocialInstagram != nil {
		t.SocialInstagram = *p.SocialInstagram
	}
	if p.SocialWhatsApp != nil {
		t.SocialWhatsApp = *p.SocialWhatsApp
	}
	return t
}

// DefaultTheme is the branding a fresh store starts with.
func DefaultTheme() StoreTheme {
	return StoreTheme{
		StoreName:    "Lumina Boutique",
		PrimaryColor: "#b8860b",
		AccentColor:  "#1a1a1a",
		BannerText:   "THE GOLDEN ERA OF ALGERIAN LUXURY",
		FontFamily:   "serif",
		Language:     "fr",
	}
}
