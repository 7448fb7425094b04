package export

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/cinedex/cinedex/internal/catalog"
)

// printableTemplate renders the selection as a standalone document meant
// for printing: table borders, header colors and a @media print rule.
var printableTemplate = template.Must(template.New("printable").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Liste des Films du CDI</title>
<style>
    table {
        border-collapse: collapse;
        width: 100%;
        font-family: Arial, sans-serif;
    }
    th, td {
        border: 1px solid #ddd;
        padding: 8px;
        text-align: left;
    }
    th {
        background-color: #4472C4;
        color: white;
        font-weight: bold;
    }
    .title {
        text-align: center;
        margin-bottom: 20px;
        font-size: 24px;
        color: #4472C4;
    }
    .summary {
        max-width: 300px;
        word-wrap: break-word;
    }
    @media print {
        .no-print { display: none; }
    }
</style>
</head>
<body>
<div class="title">Liste des Films du CDI</div>
<p><strong>Date d'export :</strong> {{.ExportDate}}</p>
<p><strong>Nombre de films :</strong> {{.Count}}</p>
<table>
<tr><th>Title</th><th>Year</th><th>Director</th><th>Rating</th><th>Summary</th><th>Source</th></tr>
{{range .Records}}<tr><td>{{.Title}}</td><td>{{.Year}}</td><td>{{.Director}}</td><td>{{.Rating}}</td><td class="summary">{{.Summary}}</td><td>{{.Provider}}</td></tr>
{{end}}</table>
</body>
</html>
`))

type printableData struct {
	ExportDate string
	Count      int
	Records    []catalog.Record
}

// WritePrintable writes the selection as a printable HTML document.
func WritePrintable(w io.Writer, records []catalog.Record, now time.Time) error {
	data := printableData{
		ExportDate: now.Format("02/01/2006 à 15:04"),
		Count:      len(records),
		Records:    records,
	}

	if err := printableTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render printable document: %w", err)
	}
	return nil
}
