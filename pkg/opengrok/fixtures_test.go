package opengrok

const resultsPage = `<!DOCTYPE html>
<html>
<head><title>Search</title></head>
<body>
<div id="header"><a class="s" href="/source/xref/decoy/x.go#1">decoy</a></div>
<div id="results">
<p class="pagetitle">Searched <b>Foo</b> (Results 1 - 4 of 120) sorted by relevance</p>
<table>
<tr class="dir"><td colspan="3"><a href="/source/xref/proj/a/">/a/</a></td></tr>
<tr>
<td class="q"><a href="/source/history/proj/a/b.go" title="History">H</a></td>
<td class="f"><a href="/source/xref/proj/a/b.go">b.go</a></td>
<td><tt class="con"><a class="s" href="/source/xref/proj/a/b.go#42"><span class="l">42</span>func <b>Foo</b>()</a><br/><a class="s" href="/source/xref/proj/a/b.go#50"><span class="l">50</span>	return <b>Foo</b>() &amp;&amp; x &lt; 3</a><br/></tt></td>
</tr>
<tr>
<td class="q"><a href="/source/history/proj/a/c.go" title="History">H</a></td>
<td class="f"><a href="/source/xref/proj/a/c.go">c.go</a></td>
<td><tt class="con"><a class="s" href="/source/xref/proj/a/c.go#abc"><span class="l">abc</span>broken <b>Foo</b></a><br/></tt></td>
</tr>
<tr>
<td class="q"><a href="/source/history/other/x/y.c" title="History">H</a></td>
<td class="f"><a href="/source/xref/other/x/y.c">y.c</a></td>
<td><tt class="con"><a class="s" href="/source/xref/other/x/y.c#7"><span class="l">7</span>int <b>Foo</b>;</a><br/></tt></td>
</tr>
</table>
<p class="slider"><a class="more" href="/source/search?q=Foo&amp;start=25">&gt;&gt;</a></p>
</div>
</body>
</html>
`

const singlePage = `<html><body><div id="results"><table>
<tr><td class="f"><a href="/xref/proj/a/b.go">b.go</a></td>
<td><tt class="con"><a class="s" href="/xref/proj/a/b.go#42"><span class="l">42</span>func <b>Foo</b>()</a></tt></td></tr>
</table></div></body></html>`

const noResultsPage = `<html><body><div id="results">
<p class="pagetitle">Your search <b>Foo</b> did not match any files.</p>
</div></body></html>`
