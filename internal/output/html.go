package output

import (
	"fmt"
	"html/template"
	"io"
	"sort"
	"strings"

	"github.com/netscapy/netscapy/pkg/types"
)

// HTMLFormatter renders the report as a self-contained HTML page with
// status badges and one section per tool.
type HTMLFormatter struct{}

func (f *HTMLFormatter) Format(w io.Writer, rep *types.CombinedReport) error {
	data := htmlData{
		Target:    rep.Target,
		Completed: rep.CountStatus(types.StatusCompleted),
		Failed:    rep.CountStatus(types.StatusFailed),
		Timeout:   rep.CountStatus(types.StatusTimeout),
	}
	for _, name := range rep.Tools() {
		scan := htmlScan{Name: name, Result: rep.Scans[name]}
		if info := scan.Result.WebInfo; info != nil {
			names := make([]string, 0, len(info.Technologies))
			for tech := range info.Technologies {
				names = append(names, tech)
			}
			sort.Strings(names)
			for _, tech := range names {
				scan.Tech = append(scan.Tech, htmlTech{
					Name:    tech,
					Details: strings.Join(info.Technologies[tech], ", "),
				})
			}
		}
		data.Scans = append(data.Scans, scan)
	}
	return htmlTpl.Execute(w, data)
}

type htmlTech struct {
	Name    string
	Details string
}

type htmlScan struct {
	Name   string
	Result *types.JobResult
	Tech   []htmlTech
}

type htmlData struct {
	Target    types.Target
	Scans     []htmlScan
	Completed int
	Failed    int
	Timeout   int
}

// statusClass maps a Status to a CSS class name.
func statusClass(s types.Status) string {
	switch s {
	case types.StatusCompleted:
		return "completed"
	case types.StatusTimeout:
		return "timeout"
	default:
		return "failed"
	}
}

var funcMap = template.FuncMap{
	"statusClass": statusClass,
	"trimReference": func(f types.NiktoFinding) string {
		if f.Reference == "" {
			return f.Message
		}
		return strings.TrimSpace(strings.TrimPrefix(f.Message, f.Reference+":"))
	},
}

var htmlTpl = template.Must(template.New("report").Funcs(funcMap).Parse(fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Netscapy Scan Report</title>
<style>%s</style>
</head>
<body>
<div class="container">
  <h1>Netscapy Scan Report</h1>
  <p class="target">Target: <strong>{{.Target}}</strong></p>

  <div class="summary-bar">
    <span class="badge completed">{{.Completed}} Completed</span>
    <span class="badge failed">{{.Failed}} Failed</span>
    <span class="badge timeout">{{.Timeout}} Timed out</span>
    <span class="total">{{len .Scans}} tools</span>
  </div>

  {{range .Scans}}
  <section class="tool-section">
    {{if .Result.Error}}
      <h2>{{.Name}} <span class="badge {{statusClass .Result.Status}}">{{.Result.Status}}</span></h2>
      <div class="error-box">{{.Result.Error}}</div>
    {{else}}
      <h2>{{.Name}} <span class="badge {{statusClass .Result.Status}}">{{.Result.Status}}</span></h2>

      {{if .Result.Ports}}
        <table>
          <thead>
            <tr><th>Port</th><th>Protocol</th><th>State</th><th>Service</th><th>Version</th></tr>
          </thead>
          <tbody>
            {{range .Result.Ports}}
            <tr><td>{{.Number}}</td><td>{{.Protocol}}</td><td>{{.State}}</td><td>{{.Service}}</td><td>{{.Version}}</td></tr>
            {{end}}
          </tbody>
        </table>
      {{else if .Result.Findings}}
        <table>
          <thead>
            <tr><th>Reference</th><th>Finding</th></tr>
          </thead>
          <tbody>
            {{range .Result.Findings}}
            <tr><td>{{.Reference}}</td><td>{{trimReference .}}</td></tr>
            {{end}}
          </tbody>
        </table>
      {{else if .Result.WebInfo}}
        <ul class="webinfo">
          <li><strong>URL:</strong> {{.Result.WebInfo.URL}}</li>
          {{if .Result.WebInfo.IP}}<li><strong>IP:</strong> {{.Result.WebInfo.IP}}</li>{{end}}
          {{if .Result.WebInfo.HTTPStatus}}<li><strong>HTTP status:</strong> {{.Result.WebInfo.HTTPStatus}}</li>{{end}}
          {{if .Result.WebInfo.Server}}<li><strong>Server:</strong> {{.Result.WebInfo.Server}}</li>{{end}}
          {{if .Result.WebInfo.Title}}<li><strong>Title:</strong> {{.Result.WebInfo.Title}}</li>{{end}}
        </ul>
        {{if .Tech}}
        <table>
          <thead>
            <tr><th>Technology</th><th>Details</th></tr>
          </thead>
          <tbody>
            {{range .Tech}}
            <tr><td>{{.Name}}</td><td>{{.Details}}</td></tr>
            {{end}}
          </tbody>
        </table>
        {{end}}
      {{else}}
        <p class="no-findings">No findings.</p>
      {{end}}
    {{end}}
  </section>
  {{end}}
</div>
</body>
</html>`, cssStyles)))

const cssStyles = `
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Roboto,Helvetica,Arial,sans-serif;
     line-height:1.6;color:#1a1a2e;background:#f5f5fa;padding:2rem}
.container{max-width:960px;margin:0 auto}
h1{margin-bottom:.25rem;font-size:1.8rem}
.target{margin-bottom:1rem;color:#444}
h2{margin:1.5rem 0 .75rem;font-size:1.3rem;border-bottom:2px solid #e0e0e0;padding-bottom:.3rem}
.summary-bar{display:flex;gap:.5rem;flex-wrap:wrap;align-items:center;margin-bottom:1.5rem}
.total{margin-left:.5rem;font-weight:600}
.badge{display:inline-block;padding:2px 10px;border-radius:12px;font-size:.8rem;font-weight:700;color:#fff;text-transform:uppercase}
.badge.completed{background:#2e7d32}
.badge.failed{background:#d32f2f}
.badge.timeout{background:#f9a825;color:#333}
table{width:100%;border-collapse:collapse;margin-bottom:1rem}
th,td{text-align:left;padding:.5rem .75rem;border-bottom:1px solid #e0e0e0}
th{background:#eaeaea;font-weight:600}
tr:hover{background:#f0f0ff}
.webinfo{list-style:none;margin-bottom:1rem}
.error-box{background:#ffebee;color:#c62828;padding:.75rem 1rem;border-radius:6px;margin-bottom:1rem}
.no-findings{color:#666;font-style:italic}
.tool-section{margin-bottom:2rem}
`
