package seo

import (
	"bytes"
	"fmt"
	"html/template"
)

// documentTmpl is the fixed crawler-facing page. Every interpolated field is
// escaped by html/template; price and brand tags are omitted entirely when
// the source record has neither.
var documentTmpl = template.Must(template.New("og-document").Parse(`<!DOCTYPE html>
<html lang="vi">
<head>
<meta charset="utf-8"/>
<title>{{.Title}}</title>
<meta name="description" content="{{.Description}}"/>
<link rel="canonical" href="{{.CanonicalURL}}"/>
<meta property="og:type" content="product"/>
<meta property="og:url" content="{{.CanonicalURL}}"/>
<meta property="og:title" content="{{.Title}}"/>
<meta property="og:description" content="{{.Description}}"/>
<meta property="og:image" content="{{.ImageURL}}"/>
<meta property="og:image:secure_url" content="{{.ImageURL}}"/>
<meta property="og:image:width" content="800"/>
<meta property="og:image:height" content="600"/>
<meta property="og:image:alt" content="{{.Title}}"/>
<meta property="og:site_name" content="{{.SiteName}}"/>
<meta property="og:locale" content="{{.Locale}}"/>
<meta name="twitter:card" content="summary_large_image"/>
{{- if .TwitterHandle}}
<meta name="twitter:site" content="{{.TwitterHandle}}"/>
{{- end}}
<meta name="twitter:title" content="{{.Title}}"/>
<meta name="twitter:description" content="{{.Description}}"/>
<meta name="twitter:image" content="{{.ImageURL}}"/>
{{- if .PriceAmount}}
<meta property="product:price:amount" content="{{.PriceAmount}}"/>
<meta property="product:price:currency" content="VND"/>
{{- end}}
{{- if .BrandName}}
<meta property="product:brand" content="{{.BrandName}}"/>
{{- end}}
</head>
<body>
<h1>{{.Title}}</h1>
{{- if .PriceText}}
<p>{{.PriceText}}</p>
{{- end}}
<p>{{.Description}}</p>
</body>
</html>
`))

// Render produces the crawler-facing HTML document for a metadata record.
func Render(meta Metadata) ([]byte, error) {
	var buf bytes.Buffer
	if err := documentTmpl.Execute(&buf, meta); err != nil {
		return nil, fmt.Errorf("render metadata document: %w", err)
	}
	return buf.Bytes(), nil
}
