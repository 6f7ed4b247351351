package generator

// stylesheet is the built-in minimal theme. Colours live in CSS custom
// properties so a go-theme manifest can override them without replacing the
// whole sheet; the dark palette switches on prefers-color-scheme.
const stylesheet = `:root {
    --width: 720px;
    --font-main: Verdana, sans-serif;
    --font-secondary: Verdana, sans-serif;
    --font-scale: 1em;
    --background-color: #fff;
    --heading-color: #222;
    --text-color: #444;
    --link-color: #3273dc;
    --visited-color: #8b6fcb;
    --code-background-color: #f2f2f2;
    --code-color: #222;
    --blockquote-color: #222;
}

@media (prefers-color-scheme: dark) {
    :root {
        --background-color: #01242e;
        --heading-color: #eee;
        --text-color: #ddd;
        --link-color: #8cc2dd;
        --visited-color: #8b6fcb;
        --code-background-color: #000;
        --code-color: #ddd;
        --blockquote-color: #ccc;
    }
}

body {
    font-family: var(--font-secondary);
    font-size: var(--font-scale);
    margin: auto;
    padding: 20px;
    max-width: var(--width);
    text-align: left;
    background-color: var(--background-color);
    word-wrap: break-word;
    overflow-wrap: break-word;
    line-height: 1.5;
    color: var(--text-color);
}

h1, h2, h3, h4, h5, h6 {
    font-family: var(--font-main);
    color: var(--heading-color);
}

a {
    color: var(--link-color);
    cursor: pointer;
    text-decoration: none;
}

a:hover {
    text-decoration: underline;
}

a:visited {
    color: var(--visited-color);
}

nav a {
    margin-right: 10px;
}

strong, b {
    color: var(--heading-color);
}

main {
    line-height: 1.6;
}

hr {
    border: 0;
    border-top: 1px dashed;
}

img {
    max-width: 100%;
}

code {
    font-family: monospace;
    padding: 2px 4px;
    background-color: var(--code-background-color);
    color: var(--code-color);
    border-radius: 3px;
}

pre {
    background-color: var(--code-background-color);
    padding: 1em;
    border-radius: 3px;
    overflow-x: auto;
}

pre code {
    padding: 0;
    background: none;
}

blockquote {
    border-left: 3px solid #999;
    color: var(--blockquote-color);
    padding-left: 20px;
    margin-left: 0;
    font-style: italic;
}

footer {
    padding: 25px 0;
    text-align: center;
    color: #777;
    font-size: 0.9em;
}

.title {
    display: inline-block;
}

.title:hover {
    text-decoration: none;
}

.title h1 {
    font-size: 1.5em;
    margin-bottom: 0;
}

.logo {
    font-family: "Menlo", monospace;
}

ul.blog-posts {
    list-style-type: none;
    padding: 0;
}

ul.blog-posts li {
    display: flex;
    margin-bottom: 10px;
}

ul.blog-posts li span {
    flex: 0 0 130px;
    font-family: monospace;
    font-size: 14px;
    color: #777;
}

ul.blog-posts li a:visited {
    color: var(--visited-color);
}

article {
    margin-top: 20px;
}

article header {
    margin-bottom: 30px;
}

article header h1 {
    margin-bottom: 5px;
}

article header time {
    font-family: monospace;
    font-size: 14px;
    color: #777;
}

.back-link {
    margin-top: 30px;
    display: block;
}

mark {
    background-color: #fff3cd;
    padding: 2px 4px;
    border-radius: 3px;
}

@media (prefers-color-scheme: dark) {
    mark {
        background-color: #664d03;
        color: #fff3cd;
    }
}
`
