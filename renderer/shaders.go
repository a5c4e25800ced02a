package renderer

// Attribute and uniform names below must match the vertex and uniforms
// structs in renderer.go.

const defaultVertexShader = `
#version 410 core
in vec2 pos;
in vec2 uv;
in vec4 color;

out vec2 fragUV;
out vec4 fragColor;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(pos, 0.0, 1.0);
    fragUV = uv;
    fragColor = color;
}
`

// Alpha-only textures (the font atlas) carry coverage in the red
// channel; RGBA textures are modulated by the vertex color.
const defaultFragmentShader = `
#version 410 core
in vec2 fragUV;
in vec4 fragColor;

out vec4 outColor;

uniform sampler2D fontTexture;
uniform bool useTexture;
uniform bool isRGBATexture;

void main() {
    if (useTexture) {
        vec4 texColor = texture(fontTexture, fragUV);
        if (isRGBATexture) {
            outColor = texColor * fragColor;
        } else {
            outColor = vec4(fragColor.rgb, fragColor.a * texColor.r);
        }
    } else {
        outColor = fragColor;
    }
}
`
