// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"bytes"
	htmltemplate "html/template"
	texttemplate "text/template"
)

type magicLinkData struct {
	Link   string
	Signup bool
}

type templatePair struct {
	text *texttemplate.Template
	html *htmltemplate.Template
}

func (t templatePair) execute(data any) (string, string, error) {
	var text, html bytes.Buffer

	if err := t.text.Execute(&text, data); err != nil {
		return "", "", err
	}

	if err := t.html.Execute(&html, data); err != nil {
		return "", "", err
	}

	return text.String(), html.String(), nil
}

var magicLinkTemplates = templatePair{
	text: texttemplate.Must(texttemplate.New("magic-link.txt").Parse(
		`{{if .Signup}}Welcome! Use the link below to create your studio.{{else}}Use the link below to sign in.{{end}}

{{.Link}}

The link expires shortly. If you did not request it you can ignore this email.
`)),
	html: htmltemplate.Must(htmltemplate.New("magic-link.html").Parse(
		`<p>{{if .Signup}}Welcome! Use the link below to create your studio.{{else}}Use the link below to sign in.{{end}}</p>
<p><a href="{{.Link}}">{{if .Signup}}Create my studio{{else}}Sign in{{end}}</a></p>
<p>The link expires shortly. If you did not request it you can ignore this email.</p>
`)),
}

var invitationTemplates = templatePair{
	text: texttemplate.Must(texttemplate.New("invitation.txt").Parse(
		`{{if .InviterName}}{{.InviterName}} invited you{{else}}You have been invited{{end}} to join {{.TenantName}} as {{.Role}}.

Accept the invitation: {{.Link}}
`)),
	html: htmltemplate.Must(htmltemplate.New("invitation.html").Parse(
		`<p>{{if .InviterName}}{{.InviterName}} invited you{{else}}You have been invited{{end}} to join <strong>{{.TenantName}}</strong> as {{.Role}}.</p>
<p><a href="{{.Link}}">Accept the invitation</a></p>
`)),
}
