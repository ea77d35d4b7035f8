package html

// CSRFFormScript adds the _csrf field to every POST form from the CSRF
// cookie, including forms swapped in after load.
func CSRFFormScript() string {
	return `<script>
(function () {
  function token() {
    var parts = document.cookie ? document.cookie.split(";") : [];
    for (var i = 0; i < parts.length; i++) {
      var c = parts[i].trim();
      if (c.indexOf("X-CSRF-Token=") === 0) return decodeURIComponent(c.substring(13));
    }
    return "";
  }
  function inject(root) {
    var value = token();
    if (!value) return;
    root.querySelectorAll("form").forEach(function (form) {
      if ((form.getAttribute("method") || "GET").toUpperCase() !== "POST") return;
      if (form.querySelector("input[name='_csrf']")) return;
      var input = document.createElement("input");
      input.type = "hidden";
      input.name = "_csrf";
      input.value = value;
      form.appendChild(input);
    });
  }
  window.csrfInject = inject;
  if (document.readyState === "loading") {
    document.addEventListener("DOMContentLoaded", function () { inject(document); });
  } else {
    inject(document);
  }
})();
</script>`
}
