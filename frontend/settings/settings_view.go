package settings

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"web3admin/models"
)

func SettingsPage(admin models.Admin) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<header class="page-header"><div><h1>Settings</h1><p class="muted">Your account</p></div></header>`+
			`<section class="panel"><h2>Profile</h2><dl class="detail">`+
			`<dt>Name</dt><dd>`+templ.EscapeString(admin.Name)+`</dd>`+
			`<dt>Email</dt><dd>`+templ.EscapeString(admin.Email)+`</dd>`+
			`<dt>Role</dt><dd>`+templ.EscapeString(admin.Role)+`</dd></dl></section>`+
			`<section class="panel"><h2>Change Password</h2>`+
			`<form class="form" method="POST" action="/dashboard/settings/password">`+
			`<div class="field"><label for="current_password">Current password</label><input id="current_password" name="current_password" type="password" autocomplete="current-password" required></div>`+
			`<div class="field"><label for="new_password">New password</label><input id="new_password" name="new_password" type="password" autocomplete="new-password" minlength="8" required></div>`+
			`<div class="field"><label for="confirm_password">Confirm new password</label><input id="confirm_password" name="confirm_password" type="password" autocomplete="new-password" required></div>`+
			`<button type="submit" class="btn btn-primary">Update password</button></form></section>`)
		return err
	})
}
