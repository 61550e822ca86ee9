package mail

import "html/template"

const layout = `
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #7c3aed; color: white; padding: 24px; border-radius: 8px 8px 0 0; }
        .content { background: #f9fafb; padding: 24px; border-radius: 0 0 8px 8px; }
        .btn { display: inline-block; background: #7c3aed; color: white; padding: 12px 20px; text-decoration: none; border-radius: 6px; margin-top: 16px; }
        .footer { margin-top: 24px; font-size: 12px; color: #6b7280; text-align: center; }
    </style>
</head>
<body>
<div class="container">
    <div class="header"><h2>{{block "title" .}}{{end}}</h2></div>
    <div class="content">
        <p>Bonjour {{.GuestName}},</p>
        {{block "body" .}}{{end}}
        {{if .Location}}<p><strong>Lieu :</strong> {{.Location}}</p>{{end}}
        {{if .StartsAt}}<p><strong>Date :</strong> {{.StartsAt}}</p>{{end}}
        {{if .PlusOneName}}<p>Votre accompagnant·e {{.PlusOneName}} est également invité·e.</p>{{end}}
        <a href="{{.RSVPURL}}" class="btn">Répondre à l'invitation</a>
    </div>
    <div class="footer">Event Planner</div>
</div>
</body>
</html>
`

const invitationBody = `
{{define "title"}}Vous êtes invité·e à {{.EventName}}{{end}}
{{define "body"}}<p>Nous serions ravis de vous compter parmi nous pour <strong>{{.EventName}}</strong>.</p>{{end}}
`

const reminderBody = `
{{define "title"}}Rappel : {{.EventName}}{{end}}
{{define "body"}}<p>Nous n'avons pas encore reçu votre réponse pour <strong>{{.EventName}}</strong>.</p>{{end}}
`

// loadTemplates parses one template per email kind on top of the shared layout
func loadTemplates() map[string]*template.Template {
	return map[string]*template.Template{
		"invitation": template.Must(template.Must(template.New("invitation").Parse(layout)).Parse(invitationBody)),
		"reminder":   template.Must(template.Must(template.New("reminder").Parse(layout)).Parse(reminderBody)),
	}
}
