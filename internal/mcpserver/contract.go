package mcpserver

// AnnotationContract describes the canonical annotation format that LLM
// consumers should follow when creating events on screenshots.
const AnnotationContract = `# Shotmark Annotation Contract

Every event annotation created through Shotmark MUST follow these rules.

## Entity graph

` + "```" + `
module (key: kebab-case, derived from name)
  └── screenshot (id: uuid)
        └── event (id: uuid)
` + "```" + `

Modules are addressed by key (e.g. ` + "`" + `checkout-flow` + "`" + `), screenshots and
events by id.

## Event fields

1. **eventType is required** and must be one of ` + "`" + `PageView` + "`" + `,
   ` + "`" + `TrackEvent` + "`" + `, ` + "`" + `Outlink` + "`" + `.
2. **name, category, action are required** and should come from the
   registered vocabularies (list them first via the list tools or the API).
   Unregistered values are accepted but make reports inconsistent.
3. **value** is an optional free-form string (e.g. a revenue amount).
4. **dimensions** is an optional list of dimension ids attached to the event.

## Coordinates

Event coordinates are stored in **percentage space**, relative to the
screenshot's rendered size:

- ` + "`" + `startX` + "`" + ` and ` + "`" + `startY` + "`" + ` are the top-left corner as a percentage
  of image width and height (0-100).
- ` + "`" + `width` + "`" + ` and ` + "`" + `height` + "`" + ` are the box size, also in percent.
- Values are NOT clamped; callers convert from pixels by dividing by the
  image dimension and multiplying by 100.

## Example

` + "```" + `json
{
  "eventType": "TrackEvent",
  "name": "Add to cart",
  "category": "Ecommerce",
  "action": "click",
  "coordinates": { "startX": 12.5, "startY": 40.0, "width": 25.0, "height": 8.0 },
  "screenshotId": "6f1c..."
}
` + "```" + `
`
