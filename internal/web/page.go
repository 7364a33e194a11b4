// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package web

import "html/template"

// pageTmpl is the single-page form. Submission goes through the JSON
// API from inline script; the server renders the last settled state so
// a plain reload still shows something sensible.
var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>arXiv Paper Summarizer</title>
	<style>
		* { box-sizing: border-box; }
		body { font-family: system-ui, sans-serif; max-width: 720px; margin: 0 auto; padding: 1rem; line-height: 1.5; }
		a { color: #0066cc; }
		h1 { margin-bottom: 0.25rem; }
		.tagline { color: #666; margin-top: 0; }
		.submit-form { display: flex; gap: 0.5rem; margin: 1.5rem 0; }
		.submit-form input[type="text"] { flex: 1; padding: 0.5rem; font-size: 1rem; }
		.submit-form button { padding: 0.5rem 1rem; font-size: 1rem; cursor: pointer; }
		.submit-form button:disabled { cursor: wait; opacity: 0.6; }
		.error { background: #f8d7da; color: #721c24; padding: 0.75rem 1rem; border-radius: 4px; }
		.loading { color: #666; }
		.paper-title { font-size: 1.2rem; font-weight: 600; margin: 0.25rem 0; }
		.paper-authors { color: #444; }
		.paper-meta { font-size: 0.9rem; color: #666; margin: 0.5rem 0; }
		.paper-abstract, .paper-summary { margin: 1rem 0; white-space: pre-wrap; }
		.section-label { font-weight: 600; margin-top: 1rem; }
		.btn-copy { padding: 0.25rem 0.6rem; font-size: 0.85rem; cursor: pointer; }
		.notice { color: #28a745; font-size: 0.85rem; margin-left: 0.5rem; }
		.notice-fail { color: #721c24; }
	</style>
</head>
<body>
	<h1>arXiv Paper Summarizer</h1>
	<p class="tagline">Paste a link to an arXiv paper and get an AI-generated summary.</p>

	<form class="submit-form" id="form">
		<input type="text" id="url" placeholder="https://arxiv.org/abs/1234.56789" value="{{.Input}}" autocomplete="off">
		<button type="submit" id="submit">Summarize</button>
	</form>

	<div id="out">
	{{if .Error}}<div class="error">{{.Error}}</div>{{end}}
	{{if .Summary}}
		<div class="paper-title">{{.Metadata.Title}}</div>
		<div class="paper-authors">{{range $i, $a := .Metadata.Authors}}{{if $i}}, {{end}}{{$a}}{{end}}</div>
		<div class="paper-meta">{{.Metadata.PublishedDate}} &middot; <a href="{{.Metadata.URL}}">{{.Metadata.URL}}</a></div>
		<div class="section-label">Abstract</div>
		<div class="paper-abstract">{{.Metadata.Abstract}}</div>
		<div class="section-label">Summary <button class="btn-copy" onclick="copySummary()">Copy</button><span class="notice" id="notice"></span></div>
		<div class="paper-summary" id="summary">{{.Summary}}</div>
	{{end}}
	</div>

	<script>
	const form = document.getElementById("form");
	const urlInput = document.getElementById("url");
	const submit = document.getElementById("submit");
	const out = document.getElementById("out");

	form.addEventListener("submit", async (e) => {
		e.preventDefault();
		submit.disabled = true;
		out.innerHTML = '<div class="loading">Summarizing paper&hellip;</div>';
		try {
			const resp = await fetch("/api/summarize", {
				method: "POST",
				headers: {"Content-Type": "application/json"},
				body: JSON.stringify({url: urlInput.value}),
			});
			render(await resp.json());
		} catch (err) {
			render({phase: "failed", error: "An error occurred while processing the paper. Please try again."});
		} finally {
			submit.disabled = false;
		}
	});

	function render(state) {
		if (state.phase === "succeeded") {
			const md = state.metadata;
			out.innerHTML =
				'<div class="paper-title">' + esc(md.title) + '</div>' +
				'<div class="paper-authors">' + md.authors.map(esc).join(", ") + '</div>' +
				'<div class="paper-meta">' + esc(md.published_date) + ' &middot; <a href="' + esc(md.url) + '">' + esc(md.url) + '</a></div>' +
				'<div class="section-label">Abstract</div>' +
				'<div class="paper-abstract">' + esc(md.abstract) + '</div>' +
				'<div class="section-label">Summary <button class="btn-copy" onclick="copySummary()">Copy</button><span class="notice" id="notice"></span></div>' +
				'<div class="paper-summary" id="summary">' + esc(state.summary) + '</div>';
		} else {
			out.innerHTML = '<div class="error">' + esc(state.error || "Failed to summarize paper") + '</div>';
		}
	}

	// Clipboard failure is cosmetic: show a transient notice, leave the
	// page state alone.
	function copySummary() {
		const text = document.getElementById("summary").textContent;
		const notice = document.getElementById("notice");
		navigator.clipboard.writeText(text).then(
			() => flash(notice, "Copied!", ""),
			() => flash(notice, "Copy failed", "notice-fail"),
		);
	}

	function flash(el, msg, cls) {
		el.textContent = msg;
		el.className = "notice " + cls;
		setTimeout(() => { el.textContent = ""; }, 2000);
	}

	function esc(s) {
		const d = document.createElement("div");
		d.textContent = s == null ? "" : s;
		return d.innerHTML;
	}
	</script>
</body>
</html>
`))
