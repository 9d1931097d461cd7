// Package layout flows a card's content onto a single page.
//
// The [Engine] turns each [model.Card] into a [model.DraftPage]: a title
// block, wrapped paragraph blocks, an optional code block, and a
// navigation-bar placeholder at a fixed position. Text is wrapped against a
// [Measurer], so the same engine works with real font metrics in production
// and deterministic fakes in tests.
//
// The pagination model is strictly one page per card. Content that cannot
// fit above the reserved navigation region is cut and replaced with a
// visible truncation marker; it is never spilled onto a second page or
// silently dropped. The navigation region is reserved before link targets
// are known, which keeps geometry stable between the layout pass and the
// later resolution pass.
package layout
