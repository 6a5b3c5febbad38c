package gen

import "text/template"

const separator = "// ----------------------------------------------------------------------------"

var projectionTemplates = map[Projection]*template.Template{
	ProjectEnum: newTemplate("enum", `{{range .Groups}}
        // {{.Title}}
{{range .Entries}}        {{.Constant}},
{{end}}{{end}}`),

	ProjectDeclarations: newTemplate("declarations", `{{range .Groups}}
{{range .Entries}}    {{.StorageType}} get{{.Name}}() const;
{{end}}{{end}}`),

	ProjectGetters: newTemplate("getters", `{{range .Groups}}{{range .Entries}}{{separator}}
{{.StorageType}} {{$.CharacteristicClass}}::get{{.Camel}}() const
{
    {{.StorageType}} result;
    bool is_set = false;
    process({{.Constant}}, &result, &is_set);
    if (!is_set)
        Log::fatal("{{$.CharacteristicClass}}", "Can't get characteristic %s",
                    getName({{.Constant}}).c_str());
    return result;
}  // get{{.Camel}}

{{end}}{{end}}`),

	ProjectForwarders: newTemplate("forwarders", `{{range .Groups}}{{range .Entries}}{{separator}}
{{.StorageType}} {{$.PropertiesClass}}::get{{.Camel}}() const
{
    return {{$.CacheMember}}->get{{.Camel}}();
}  // get{{.Camel}}

{{end}}{{end}}`),

	ProjectTypeSwitch: newTemplate("type-switch", `{{range .Groups}}{{range .Entries}}    case {{.Constant}}:
        return {{.TypeTag}};
{{end}}{{end}}`),

	ProjectNameSwitch: newTemplate("name-switch", `{{range .Groups}}{{range .Entries}}    case {{.Constant}}:
        return "{{.Constant}}";
{{end}}{{end}}`),

	ProjectXMLLoader: newTemplate("xml-loader", `{{range .Groups}}    if (const XMLNode *sub_node = node->getNode("{{.XMLTag}}"))
    {
{{range .Entries}}        sub_node->get("{{.XMLAttribute}}", &{{$.ValuesMember}}[{{.Constant}}]);
{{end}}    }

{{end}}`),
}

func newTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).
		Funcs(template.FuncMap{"separator": func() string { return separator }}).
		Parse(text))
}
