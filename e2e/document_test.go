//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentOverlayOpensAndCloses(t *testing.T) {
	t.Parallel()
	app, _ := startSearchApp(t, 2)

	require.NoError(t, app.Search("germany"))
	require.True(t, app.See("2 results found in"))

	require.NoError(t, app.Send(KeyDown))
	mark := app.Mark()
	require.NoError(t, app.Send(KeyEnter))

	if !app.SeeAfter(mark, "Full text of germany report 2.") {
		app.DumpTail("overlay-open", 4096)
		t.Fatal("Overlay should show the document body")
	}
	assert.True(t, app.SeeAfter(mark, "Authors: Anna Schmidt, Ben Weber"))
	assert.True(t, app.SeeAfter(mark, "Year: 2002"))

	mark = app.Mark()
	require.NoError(t, app.Send(KeyQuit))
	require.True(t, app.SeeAfter(mark, "2 results found in"), "Closing should redraw the results")
	assert.NotContains(t, app.PlainSince(mark), "Full text of germany report 2.")

	// q closed the overlay, the app is still running
	exited, _ := app.WaitExit(300 * time.Millisecond)
	assert.False(t, exited, "q in the overlay should not quit")
}

func TestDocumentOpensInPager(t *testing.T) {
	t.Parallel()
	app, _ := startSearchApp(t, 1)

	require.NoError(t, app.Search("germany"))
	require.True(t, app.See("1 result found in"))
	require.NoError(t, app.Send(KeyEnter))
	require.True(t, app.See("Full text of germany report 1."))

	mark := app.Mark()
	require.NoError(t, app.Send(KeyPager))
	require.True(t, app.SeeAfter(mark, "Germany report 1"), "Pager should show the document")

	// leave the pager, then the overlay is back
	mark = app.Mark()
	require.NoError(t, app.Send(KeyQuit))
	require.True(t, app.SeeAfter(mark, "Authors: Anna Schmidt, Ben Weber"), "Overlay should return after the pager")
}

func TestHelpOverlay(t *testing.T) {
	t.Parallel()
	app, _ := startSearchApp(t, 1)

	require.NoError(t, app.Search("germany"))
	require.True(t, app.See("1 result found in"))

	mark := app.Mark()
	require.NoError(t, app.Send(KeyHelp))
	require.True(t, app.SeeAfter(mark, "docsearch keys"), "Help should open")

	mark = app.Mark()
	require.NoError(t, app.Send(KeyHelp))
	require.True(t, app.SeeAfter(mark, "Germany report 1"), "Help should close")
}
