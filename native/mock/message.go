package mock

import "encoding/json"

// Extra returns the correlation id carried by request.
func Extra(request map[string]any) string {
	extra, _ := request["@extra"].(string)
	return extra
}

// Reply builds a success message for request with the given type tag and fields.
func Reply(request map[string]any, typeTag string, fields map[string]any) string {
	message := map[string]any{}
	for k, v := range fields {
		message[k] = v
	}
	message["@type"] = typeTag
	message["@extra"] = Extra(request)
	data, _ := json.Marshal(message)
	return string(data)
}

// Fail builds an error message for request.
func Fail(request map[string]any, text string) string {
	return Reply(request, "error", map[string]any{"code": 500, "message": text})
}

// Route dispatches by request @type, requests without a route get no response.
func Route(routes map[string]Responder) Responder {
	return func(request map[string]any) []string {
		typeTag, _ := request["@type"].(string)
		if responder, ok := routes[typeTag]; ok {
			return responder(request)
		}
		return nil
	}
}
