package testutil

// Annotation is the comment the original inline fix placed above every
// constants block.
const Annotation = `{#
  Issue #327 Fix: Inline constants instead of using request_json
#}`

// ConstantsBlock is a small annotated constants definition.
const ConstantsBlock = Annotation + `
{% set constants = {
  'HUBDB_MODULES_TABLE_ID': '135621904',
  'ENABLE_CRM_PROGRESS': true
} %}`

// DuplicatedConstantsTemplate defines the constants block twice, the second
// time with a nested object.
const DuplicatedConstantsTemplate = `{% extends "base.html" %}
` + ConstantsBlock + `
{% block content %}
<h1>{{ constants.HUBDB_MODULES_TABLE_ID }}</h1>
` + Annotation + `
{% set constants = {
  'HUBDB_MODULES_TABLE_ID': '135621904',
  'AUTH': {'LOGIN_URL': '/_hcms/mem/login'}
} %}


<p>body</p>
{% endblock %}
`

// RequestJSONTemplate uses the legacy request_json statement for an allowed
// name and for a name that must be left alone.
const RequestJSONTemplate = `{% block head %}
    {% set head_constants = get_asset_url('../config/constants.json') | request_json %}
{% endblock %}
{% block content %}
  {% set other_var = get_asset_url("x/constants.json") | request_json %}
{% endblock %}
`
