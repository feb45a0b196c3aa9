package mcpserver

// SkillFormatContract describes the canonical skill document format that
// authors and LLM consumers should follow when creating or updating skills.
const SkillFormatContract = `# Skill Document Format Contract

Every skill lives in its own directory under the skills root and holds exactly
one primary document named SKILL.md.

## Structure

` + "```" + `markdown
---
name: bknd-create-entity
description: Use when creating a new entity in the backend schema.
---

# Creating an entity

## Via the Admin UI

Step-by-step instructions using the admin panel.

## Code Approach

The same task done programmatically (config file, API calls).

## When to Use the UI vs. Code

Guidance on choosing between the two approaches.

## Related Skills

- **bknd-entity-relations** - defining relations between entities
- **bknd-seed-data** - populating the new entity with data
` + "```" + `

## Rules

1. **Frontmatter is mandatory.** The ` + "`---`" + ` fences must be the first thing
   in the file, no leading blank lines.
2. **` + "`name`" + ` is required**: 1-64 characters of lowercase letters, digits, and
   hyphens, starting and ending with a letter or digit, and equal to the
   containing directory's name.
3. **` + "`description`" + ` is required**: at most 1024 characters, and it should
   state when to invoke the skill ("Use when ...").
4. **Both approaches are documented** for skills in the dual-approach scope: a
   UI-based section and a code-based section, ideally with explicit guidance
   on choosing between them.
5. **Related Skills** is a level-2 heading whose list items reference other
   skills by identifier (bold, list-item, or bracketed form). Every referenced
   identifier must be an existing skill directory.
6. **Encoding** is UTF-8 with a trailing newline.
`
