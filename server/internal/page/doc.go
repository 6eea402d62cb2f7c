// Package page renders the dashboard's single HTML page.
//
// The page is rendered once from the immutable layout when New is called and
// served from memory afterwards. It holds the title, the site dropdown, the
// pie chart region, the payload range slider and the scatter chart region.
// A small script talks to /ws/controls and falls back to POST /api/v1/update
// when the WebSocket cannot be opened. Charts are drawn with Plotly.js.
package page
