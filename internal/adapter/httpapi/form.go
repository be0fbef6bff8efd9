package httpapi

import (
	"fmt"
	"html/template"
	"net/http"
	"sort"

	"github.com/couchcryptid/food-freshness/internal/domain"
	"github.com/couchcryptid/food-freshness/internal/predict"
)

// formData drives the page template: previously submitted values, an error
// message, and the verdict when a prediction succeeded. City and Climate are
// display-only context; they never reach the scorer.
type formData struct {
	Values  predict.Sample
	City    string
	Climate *domain.ClimatePreset
	Error   string
	Result  *formResult
}

type formResult struct {
	Label         domain.Label
	Probabilities []labelProb
}

type labelProb struct {
	Label       domain.Label
	Probability float64
}

// orderedProbs flattens the probability map into ordinal label order for
// stable rendering.
func orderedProbs(probs map[domain.Label]float64) []labelProb {
	out := make([]labelProb, 0, len(probs))
	for _, l := range domain.Labels {
		if p, ok := probs[l]; ok {
			out = append(out, labelProb{Label: l, Probability: p})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Probability > out[j].Probability })
	return out
}

// selectField describes one dropdown in the form.
type selectField struct {
	Name    string
	Title   string
	Options []string
}

var formFields = []selectField{
	{Name: "storage_condition", Title: "Storage condition", Options: domain.StorageConditions},
	{Name: "container_type", Title: "Container type", Options: domain.ContainerTypes},
	{Name: "food_type", Title: "Food type", Options: domain.FoodTypes},
	{Name: "moisture_type", Title: "Moisture type", Options: domain.MoistureTypes},
	{Name: "cooking_method", Title: "Cooking method", Options: domain.CookingMethods},
	{Name: "texture", Title: "Texture", Options: domain.Textures},
	{Name: "smell", Title: "Smell", Options: domain.Smells},
}

var formTemplate = template.Must(template.New("form").Funcs(template.FuncMap{
	"pct": func(p float64) string { return fmt.Sprintf("%.1f%%", p*100) },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<title>Food Freshness Check</title>
<style>
body { font-family: sans-serif; max-width: 40rem; margin: 2rem auto; }
label { display: block; margin-top: 0.8rem; }
input, select { width: 100%; padding: 0.3rem; }
button { margin-top: 1.2rem; padding: 0.5rem 1.5rem; }
.error { color: #b00; margin-top: 1rem; }
.verdict { margin-top: 1.5rem; padding: 1rem; border: 1px solid #ccc; }
.verdict h2 { margin: 0 0 0.5rem; }
</style>
</head>
<body>
<h1>Food Freshness Check</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post" action="/predict">
<label>City (optional, shows typical climate)
<select name="city">
<option value=""></option>
{{$city := .City}}
{{range .Cities}}<option{{if eq . $city}} selected{{end}}>{{.}}</option>
{{end}}</select>
</label>
{{with .Climate}}<p>{{.Region}} region: {{.TempMin}}&ndash;{{.TempMax}}&deg;C, {{.HumidityMin}}&ndash;{{.HumidityMax}}% humidity</p>{{end}}
<label>Storage time (hours)
<input name="storage_time" value="{{index .Values "storage_time"}}" required>
</label>
<label>Time since cooking (hours)
<input name="time_since_cooking" value="{{index .Values "time_since_cooking"}}" required>
</label>
{{$values := .Values}}
{{range .Fields}}
<label>{{.Title}}
<select name="{{.Name}}">
{{$selected := index $values .Name}}
{{range .Options}}<option{{if eq . $selected}} selected{{end}}>{{.}}</option>
{{end}}</select>
</label>
{{end}}
<button type="submit">Check freshness</button>
</form>
{{with .Result}}
<div class="verdict">
<h2>{{.Label}}</h2>
<ul>
{{range .Probabilities}}<li>{{.Label}}: {{pct .Probability}}</li>
{{end}}</ul>
</div>
{{end}}
</body>
</html>
`))

// templateData adds the static field and city lists to the per-request data.
// Flat struct: the template walks it with plain field access.
type templateData struct {
	Values  predict.Sample
	City    string
	Climate *domain.ClimatePreset
	Error   string
	Result  *formResult
	Fields  []selectField
	Cities  []string
}

func (s *Server) renderForm(w http.ResponseWriter, status int, data formData) {
	if data.Values == nil {
		data.Values = predict.Sample{}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	err := formTemplate.Execute(w, templateData{
		Values:  data.Values,
		City:    data.City,
		Climate: data.Climate,
		Error:   data.Error,
		Result:  data.Result,
		Fields:  formFields,
		Cities:  domain.Cities(),
	})
	if err != nil {
		s.logger.Error("render form", "error", err)
	}
}
