// Package htmldoc extracts card content from instructional HTML documents.
//
// The expected document shape is a flat sequence of card containers:
//
//	<div class="card">
//	    <h2>Card title</h2>
//	    <div class="card-content"><p>Body text ...</p></div>
//	    <div class="code-card"><pre>verbatim code</pre></div>
//	</div>
//
// Parsing is tolerant: malformed markup is recovered by the HTML5 parsing
// algorithm, a missing title falls back to a positional placeholder, and
// only a document with no card containers at all is a fatal error
// ([ErrEmptyDocument]).
package htmldoc
