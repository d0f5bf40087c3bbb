package css

// app is written once and then owned by the application.
const app = `/**
 * App-Specific Tokens (Tier 3)
 *
 * This file is NOT generated. It is created on the first run and never
 * overwritten afterwards, edit it freely.
 *
 * Put layout values that only make sense for this application here and
 * build them on top of the semantic tokens.
 */

:root {
  /* Layout */
  --sidebar-width: 280px;
  --header-height: 64px;

  /* Containers */
  --container-sm: 640px;
  --container-md: 768px;
  --container-lg: 1024px;
  --container-xl: 1280px;
}
`

// App returns the initial content of app.css.
func App() string {
	return app
}
