/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: templates.go
Description: HTML template for describe reports. One card per column listing the same
fields as the text report.
*/

package reporting

// reportTemplate is the page rendered by the html format
const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            color: #333;
        }

        .container {
            max-width: 1100px;
            margin: 0 auto;
            padding: 20px;
        }

        .header {
            background: rgba(255, 255, 255, 0.95);
            border-radius: 20px;
            padding: 30px;
            margin-bottom: 30px;
            box-shadow: 0 8px 32px rgba(0, 0, 0, 0.1);
            text-align: center;
        }

        .header h1 {
            color: #4a5568;
            font-size: 2.2rem;
            margin-bottom: 10px;
        }

        .header p {
            color: #718096;
        }

        .grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(300px, 1fr));
            gap: 20px;
        }

        .card {
            background: rgba(255, 255, 255, 0.95);
            border-radius: 15px;
            padding: 20px;
            box-shadow: 0 4px 16px rgba(0, 0, 0, 0.1);
        }

        .card h2 {
            font-size: 1.2rem;
            color: #2d3748;
            margin-bottom: 4px;
        }

        .kind {
            display: inline-block;
            font-size: 0.8rem;
            color: #fff;
            background: #667eea;
            border-radius: 8px;
            padding: 2px 8px;
            margin-bottom: 12px;
        }

        table {
            width: 100%;
            border-collapse: collapse;
        }

        td {
            padding: 6px 4px;
            border-bottom: 1px solid #edf2f7;
        }

        td.label {
            color: #718096;
            width: 45%;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.Title}}</h1>
            {{if .Source}}<p>Source: {{.Source}}</p>{{end}}
            <p>Session {{.SessionID}} &middot; generated {{.GeneratedAt}}</p>
        </div>
        <div class="grid">
            {{range .Columns}}
            <div class="card">
                <h2>{{.Name}}</h2>
                <span class="kind">{{.Kind}}</span>
                <table>
                    {{range .Fields}}
                    <tr><td class="label">{{.Label}}</td><td>{{.Value}}</td></tr>
                    {{end}}
                </table>
            </div>
            {{end}}
        </div>
    </div>
</body>
</html>
`
