package converter

import (
	"fmt"

	"github.com/swagtools/swagconvert/openapi"
	"github.com/swagtools/swagconvert/parser"
)

// convertServers synthesizes the servers list from host, basePath, and
// schemes. One server is produced per scheme, in declared order. Without a
// host or without schemes there is nothing to synthesize and the list stays
// empty; that is worth a note since the output document then has no base URL.
func (c *Converter) convertServers(doc *parser.Document, result *ConversionResult) []*openapi.Server {
	if doc.Host == "" {
		if doc.BasePath != "" || len(doc.Schemes) > 0 {
			c.addIssue(result, "host",
				"no host declared, servers list omitted", SeverityInfo)
		}
		return nil
	}
	if len(doc.Schemes) == 0 {
		c.addIssue(result, "schemes",
			"no schemes declared, servers list omitted", SeverityInfo)
		return nil
	}

	basePath := doc.BasePath
	if basePath == "" {
		basePath = "/"
	}

	// Schemes were validated at parse, so every declared scheme yields
	// exactly one server.
	servers := make([]*openapi.Server, 0, len(doc.Schemes))
	for _, scheme := range doc.Schemes {
		servers = append(servers, &openapi.Server{
			URL: fmt.Sprintf("%s://%s%s", scheme, doc.Host, basePath),
		})
	}
	return servers
}
