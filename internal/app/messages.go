// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message strings shown by
// the notes terminal UI.
//
// Keeping them in one place ensures consistent wording across screens and
// lets tests assert on the same text the user sees.
package app

const (
	// MsgNotesLoadFailed prefixes the warning shown above an empty list when
	// the store could not be read at startup.
	MsgNotesLoadFailed = "Could not load notes"

	// MsgListOutOfDate prefixes the warning shown when a list listener
	// rejected a note event and the list no longer mirrors the store.
	MsgListOutOfDate = "Note list may be out of date"

	// MsgNoNotes is shown by an empty, unfiltered note list.
	MsgNoNotes = "No notes yet"

	// MsgNothingMatches is shown when the search filter matches no note.
	MsgNothingMatches = "Nothing matches"

	// MsgLoading is shown until the first load finished.
	MsgLoading = "Loading..."

	// MsgNoteSaved confirms a commit from the edit screen.
	MsgNoteSaved = "Saved"

	// MsgSaving is shown while a commit is in flight.
	MsgSaving = "Saving..."

	// MsgCopied confirms that the note body was copied to the clipboard.
	MsgCopied = "Copied!"

	// MsgAttached prefixes the name of a freshly stored attachment.
	MsgAttached = "Attached"

	// MsgAttachmentsUnavailable prefixes the reason attachments of the open
	// note could not be listed.
	MsgAttachmentsUnavailable = "Attachments unavailable"
)
