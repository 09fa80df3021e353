// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing messages shown by the shop's pages.
//
// Validation messages of individual form fields live with the validators;
// the constants here cover outcomes that are not tied to a single field.
package app

const (
	// MsgInvalidCredentials is shown when the login form's email and
	// password do not match an account.
	MsgInvalidCredentials = "Invalid email or password."

	// MsgEmailTaken is shown when signing up with an email that already
	// belongs to an account.
	MsgEmailTaken = "E-Mail exists already, please pick a different one."

	// MsgSignedUp is flashed on the login page after a successful signup.
	MsgSignedUp = "Your account was created. Please log in."

	// MsgInvalidForm is shown for rejected input without a more specific
	// message.
	MsgInvalidForm = "Please check your input."

	// MsgCSRFFailed is shown when a form is submitted without a valid token.
	MsgCSRFFailed = "Invalid or missing form token. Please reload the page and try again."

	// MsgTooManyAttempts is shown when a client submits credentials too often.
	MsgTooManyAttempts = "Too many attempts. Please wait a moment and try again."
)
