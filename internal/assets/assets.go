package assets

// DefaultStyleName is the built-in stylesheet applied when none is chosen.
const DefaultStyleName = "contract"

// DefaultLetterheadName is the built-in preset used by the CLI when no
// letterhead is given.
const DefaultLetterheadName = "classic"
